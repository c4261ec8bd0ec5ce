package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/availability"
	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/stock"
	"github.com/kiranadev/inventory-billing-service/internal/stock/dto"
	"github.com/kiranadev/inventory-billing-service/pkg/cache"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"go.uber.org/zap"
)

type stockUseCase struct {
	repo   stock.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewStockUseCase(repo stock.Repository, cacheClient *cache.RedisClient, log logger.ZapLogger) stock.UseCase {
	return &stockUseCase{
		repo:   repo,
		cache:  cacheClient,
		logger: log,
	}
}

func (uc *stockUseCase) CreateReceipt(ctx context.Context, input *dto.CreateReceiptInput) (*model.StockReceipt, error) {
	now := time.Now()
	receivedDate := input.ReceivedDate
	if receivedDate.IsZero() {
		receivedDate = now
	}

	receipt := &model.StockReceipt{
		BaseModel:          model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ProductID:          input.ProductID,
		DealerName:         input.DealerName,
		BuyingPrice:        input.BuyingPrice,
		Quantity:           input.Quantity,
		SupplierBillNumber: input.SupplierBillNumber,
		LotNumber:          input.LotNumber,
		ReceivedDate:       receivedDate,
	}

	if err := uc.repo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	uc.invalidateAvailability(ctx)
	return receipt, nil
}

func (uc *stockUseCase) GetReceipt(ctx context.Context, id string) (*model.StockReceipt, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *stockUseCase) ListReceipts(ctx context.Context) ([]model.StockReceipt, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *stockUseCase) UpdateReceipt(ctx context.Context, id string, input *dto.UpdateReceiptInput) (*model.StockReceipt, error) {
	receipt, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "stock receipt %s", id)
	}

	receipt.ProductID = input.ProductID
	receipt.DealerName = input.DealerName
	receipt.BuyingPrice = input.BuyingPrice
	receipt.Quantity = input.Quantity
	receipt.SupplierBillNumber = input.SupplierBillNumber
	receipt.LotNumber = input.LotNumber
	if !input.ReceivedDate.IsZero() {
		receipt.ReceivedDate = input.ReceivedDate
	}
	receipt.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, receipt); err != nil {
		return nil, err
	}

	uc.invalidateAvailability(ctx)
	return receipt, nil
}

func (uc *stockUseCase) DeleteReceipt(ctx context.Context, id string) error {
	receipt, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperr.Wrap(apperr.ErrNotFound, "stock receipt %s", id)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateAvailability(ctx)
	return nil
}

func (uc *stockUseCase) invalidateAvailability(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, availability.CacheKey).Err(); err != nil {
		uc.logger.Error("failed to invalidate availability cache", zap.Error(err))
	}
}
