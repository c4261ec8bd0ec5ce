package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/availability"
	"github.com/kiranadev/inventory-billing-service/internal/billing"
	"github.com/kiranadev/inventory-billing-service/internal/billing/dto"
	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/store"
	"github.com/kiranadev/inventory-billing-service/pkg/cache"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	lockTTL          = 5 * time.Second
	lockAttempts     = 3
	conflictAttempts = 3
)

// BillCreatedEvent is the payload published to the broker after a bill is
// committed.
type BillCreatedEvent struct {
	BillID       string    `json:"billId"`
	BillNumber   string    `json:"billNumber"`
	CustomerName string    `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

type billingUseCase struct {
	repo      billing.Repository
	storeRepo store.Repository
	locker    billing.Locker
	cache     *cache.RedisClient
	publisher billing.Publisher
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewBillingUseCase(
	repo billing.Repository,
	storeRepo store.Repository,
	locker billing.Locker,
	cacheClient *cache.RedisClient,
	publisher billing.Publisher,
	log logger.ZapLogger,
) billing.UseCase {
	return &billingUseCase{
		repo:      repo,
		storeRepo: storeRepo,
		locker:    locker,
		cache:     cacheClient,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

// CreateBill assigns the next bill number and inserts the bill as one atomic
// step. A per-store lock serializes concurrent creations; the unique index on
// bills.bill_number backstops the lock, and a duplicate insert restarts the
// read-max/generate/insert cycle from scratch.
func (uc *billingUseCase) CreateBill(ctx context.Context, input *dto.CreateBillInput) (*model.Bill, error) {
	profile, err := uc.storeRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.ErrStoreProfileMissing
	}

	prefix, err := billing.Prefix(profile.StoreName)
	if err != nil {
		return nil, err
	}

	lockKey := "lock:billing:" + prefix
	lockValue := uuid.New().String()
	acquired := false
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, lockKey, lockValue, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire billing lock", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !acquired {
		return nil, errors.New("billing busy, please try again later")
	}
	defer uc.locker.ReleaseLock(ctx, lockKey, lockValue)

	var bill *model.Bill
	for attempt := 0; attempt < conflictAttempts; attempt++ {
		bill, err = uc.generateAndInsert(ctx, prefix, input)
		if err == nil {
			break
		}
		if !errors.Is(err, apperr.ErrDuplicateBillNumber) {
			return nil, err
		}
		uc.logger.Warn("bill number conflict, regenerating",
			zap.Int("attempt", attempt+1), zap.Error(err))
	}
	if err != nil {
		return nil, err
	}

	uc.invalidateAvailability(ctx)
	uc.publishCreated(bill)

	return bill, nil
}

func (uc *billingUseCase) generateAndInsert(ctx context.Context, prefix string, input *dto.CreateBillInput) (*model.Bill, error) {
	groupKey := billing.GroupKey(prefix, uc.now())
	low, high := billing.GroupBounds(groupKey)

	existing, err := uc.repo.ListNumbersInRange(ctx, low, high)
	if err != nil {
		return nil, err
	}

	billNumber, skipped, err := billing.NextInGroup(groupKey, existing)
	for _, bn := range skipped {
		uc.logger.Warn("skipping malformed bill number while scanning group",
			zap.String("bill_number", bn), zap.String("group", groupKey))
	}
	if err != nil {
		return nil, err
	}

	paymentMode := input.PaymentMode
	if paymentMode == "" {
		paymentMode = model.PaymentModeCash
	}

	bill := &model.Bill{
		ID:           uuid.New().String(),
		BillNumber:   billNumber,
		CustomerName: input.CustomerName,
		Address:      input.Address,
		MobileNumber: input.MobileNumber,
		PaymentMode:  paymentMode,
		CreatedAt:    uc.now(),
	}
	for _, item := range input.Items {
		bill.Items = append(bill.Items, model.BillItem{
			ID:        uuid.New().String(),
			BillID:    bill.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := uc.repo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (uc *billingUseCase) invalidateAvailability(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, availability.CacheKey).Err(); err != nil {
		uc.logger.Error("failed to invalidate availability cache", zap.Error(err))
	}
}

func (uc *billingUseCase) publishCreated(bill *model.Bill) {
	if uc.publisher == nil {
		return
	}
	event := BillCreatedEvent{
		BillID:       bill.ID,
		BillNumber:   bill.BillNumber,
		CustomerName: bill.CustomerName,
		CreatedAt:    bill.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.publisher.Publish(ctx, []byte(bill.ID), payload); err != nil {
			uc.logger.Error("failed to publish bill.created event", zap.Error(err))
		}
	}()
}

func (uc *billingUseCase) GetBill(ctx context.Context, id string) (*model.Bill, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *billingUseCase) ListBills(ctx context.Context) ([]model.Bill, error) {
	return uc.repo.FindAll(ctx)
}
