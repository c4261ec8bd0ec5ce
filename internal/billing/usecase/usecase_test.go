package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/billing"
	"github.com/kiranadev/inventory-billing-service/internal/billing/dto"
	"github.com/kiranadev/inventory-billing-service/internal/model"
	"go.uber.org/zap"
)

// --- fakes ---

type fakeBillRepo struct {
	mu    sync.Mutex
	bills []model.Bill

	// readDelay widens the window between reading the current max and
	// inserting, to provoke the duplicate-number race.
	readDelay time.Duration
}

func (f *fakeBillRepo) Create(_ context.Context, bill *model.Bill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bills {
		if b.BillNumber == bill.BillNumber {
			return apperr.Wrap(apperr.ErrDuplicateBillNumber, "bill number %s", bill.BillNumber)
		}
	}
	f.bills = append(f.bills, *bill)
	return nil
}

func (f *fakeBillRepo) FindByID(_ context.Context, id string) (*model.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bills {
		if b.ID == id {
			bill := b
			return &bill, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) FindAll(_ context.Context) ([]model.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Bill, len(f.bills))
	copy(out, f.bills)
	return out, nil
}

func (f *fakeBillRepo) ListNumbersInRange(_ context.Context, low, high string) ([]string, error) {
	f.mu.Lock()
	var numbers []string
	for _, b := range f.bills {
		if b.BillNumber >= low && b.BillNumber < high {
			numbers = append(numbers, b.BillNumber)
		}
	}
	f.mu.Unlock()

	if f.readDelay > 0 {
		time.Sleep(f.readDelay)
	}
	return numbers, nil
}

func (f *fakeBillRepo) numbers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.bills))
	for i, b := range f.bills {
		out[i] = b.BillNumber
	}
	sort.Strings(out)
	return out
}

type fakeStoreRepo struct {
	profile *model.StoreProfile
}

func (f *fakeStoreRepo) Get(_ context.Context) (*model.StoreProfile, error) {
	return f.profile, nil
}

func (f *fakeStoreRepo) Upsert(_ context.Context, p *model.StoreProfile) error {
	f.profile = p
	return nil
}

// serialLocker really serializes callers, like the Redis lock does.
type serialLocker struct {
	mu sync.Mutex
}

func (l *serialLocker) AcquireLock(_ context.Context, _, _ string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	return true, nil
}

func (l *serialLocker) ReleaseLock(_ context.Context, _, _ string) error {
	l.mu.Unlock()
	return nil
}

// passLocker grants every request without serializing, so the unique check
// in the repository is the only defense.
type passLocker struct{}

func (passLocker) AcquireLock(_ context.Context, _, _ string, _ time.Duration) (bool, error) {
	return true, nil
}

func (passLocker) ReleaseLock(_ context.Context, _, _ string) error { return nil }

type fakePublisher struct {
	events chan []byte
}

func (p *fakePublisher) Publish(_ context.Context, _, value []byte) error {
	p.events <- value
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) Fatal(string, ...zap.Field) {}
func (nopLogger) Sync() error                { return nil }

func storeProfile(name string) *model.StoreProfile {
	return &model.StoreProfile{ID: "store", StoreName: name}
}

func billInput() *dto.CreateBillInput {
	return &dto.CreateBillInput{
		CustomerName: "Ramesh",
		Items:        []dto.BillItemInput{{ProductID: "p1", Quantity: 2}},
	}
}

func newTestUseCase(repo *fakeBillRepo, storeRepo *fakeStoreRepo, locker billing.Locker, at time.Time) *billingUseCase {
	uc := NewBillingUseCase(repo, storeRepo, locker, nil, nil, nopLogger{}).(*billingUseCase)
	uc.now = func() time.Time { return at }
	return uc
}

// --- tests ---

func TestCreateBillMissingProfile(t *testing.T) {
	repo := &fakeBillRepo{}
	uc := newTestUseCase(repo, &fakeStoreRepo{}, &serialLocker{}, time.Now())

	_, err := uc.CreateBill(context.Background(), billInput())
	if !errors.Is(err, apperr.ErrStoreProfileMissing) {
		t.Fatalf("CreateBill() error = %v, want ErrStoreProfileMissing", err)
	}
	if len(repo.numbers()) != 0 {
		t.Error("no bill must be created when the store profile is missing")
	}
}

func TestCreateBillEmptyStoreName(t *testing.T) {
	uc := newTestUseCase(&fakeBillRepo{}, &fakeStoreRepo{profile: storeProfile("  ")}, &serialLocker{}, time.Now())

	_, err := uc.CreateBill(context.Background(), billInput())
	if !errors.Is(err, apperr.ErrStoreNameEmpty) {
		t.Fatalf("CreateBill() error = %v, want ErrStoreNameEmpty", err)
	}
}

func TestCreateBillSequence(t *testing.T) {
	april := time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeBillRepo{}
	uc := newTestUseCase(repo, &fakeStoreRepo{profile: storeProfile("General Traders")}, &serialLocker{}, april)

	for i, want := range []string{"GT-24040001", "GT-24040002", "GT-24040003"} {
		bill, err := uc.CreateBill(context.Background(), billInput())
		if err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
		if bill.BillNumber != want {
			t.Errorf("call %d: bill number = %q, want %q", i+1, bill.BillNumber, want)
		}
		if bill.PaymentMode != model.PaymentModeCash {
			t.Errorf("call %d: payment mode = %q, want default CASH", i+1, bill.PaymentMode)
		}
	}
}

func TestCreateBillGroupRollover(t *testing.T) {
	repo := &fakeBillRepo{}
	storeRepo := &fakeStoreRepo{profile: storeProfile("General Traders")}

	april := time.Date(2024, time.April, 29, 0, 0, 0, 0, time.UTC)
	ucApril := newTestUseCase(repo, storeRepo, &serialLocker{}, april)
	aprilBill, err := ucApril.CreateBill(context.Background(), billInput())
	if err != nil {
		t.Fatal(err)
	}

	may := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	ucMay := newTestUseCase(repo, storeRepo, &serialLocker{}, may)
	mayBill, err := ucMay.CreateBill(context.Background(), billInput())
	if err != nil {
		t.Fatal(err)
	}

	if aprilBill.BillNumber != "GT-24040001" {
		t.Errorf("april bill = %q, want GT-24040001", aprilBill.BillNumber)
	}
	if mayBill.BillNumber != "GT-24050001" {
		t.Errorf("may bill restarts its own group, got %q, want GT-24050001", mayBill.BillNumber)
	}
}

func TestCreateBillSkipsMalformedNumbers(t *testing.T) {
	april := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeBillRepo{bills: []model.Bill{
		{ID: "b1", BillNumber: "GT-24040002"},
		{ID: "b2", BillNumber: "GT-2404garbage"},
	}}
	uc := newTestUseCase(repo, &fakeStoreRepo{profile: storeProfile("General Traders")}, &serialLocker{}, april)

	bill, err := uc.CreateBill(context.Background(), billInput())
	if err != nil {
		t.Fatal(err)
	}
	if bill.BillNumber != "GT-24040003" {
		t.Errorf("bill number = %q, want GT-24040003", bill.BillNumber)
	}
}

func TestCreateBillPublishesEvent(t *testing.T) {
	april := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	pub := &fakePublisher{events: make(chan []byte, 1)}
	uc := NewBillingUseCase(&fakeBillRepo{}, &fakeStoreRepo{profile: storeProfile("General Traders")}, &serialLocker{}, nil, pub, nopLogger{}).(*billingUseCase)
	uc.now = func() time.Time { return april }

	if _, err := uc.CreateBill(context.Background(), billInput()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-pub.events:
	case <-time.After(2 * time.Second):
		t.Error("expected a bill.created event")
	}
}

// Concurrent creations serialized by the lock must yield distinct, gapless
// numbers even with a widened read-max/insert window.
func TestCreateBillConcurrent(t *testing.T) {
	const n = 5
	april := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeBillRepo{readDelay: 10 * time.Millisecond}
	uc := newTestUseCase(repo, &fakeStoreRepo{profile: storeProfile("General Traders")}, &serialLocker{}, april)

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateBill(context.Background(), billInput())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}

	want := make([]string, n)
	for i := range want {
		want[i] = fmt.Sprintf("GT-2404%04d", i+1)
	}
	got := repo.numbers()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bill numbers = %v, want gapless %v", got, want)
		}
	}
}

// With the lock disabled, the repository's uniqueness check plus bounded
// retry still produce distinct numbers.
func TestCreateBillConflictRetry(t *testing.T) {
	const n = 3
	april := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeBillRepo{readDelay: 5 * time.Millisecond}
	uc := newTestUseCase(repo, &fakeStoreRepo{profile: storeProfile("General Traders")}, passLocker{}, april)

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateBill(context.Background(), billInput())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}

	got := repo.numbers()
	seen := map[string]bool{}
	for _, bn := range got {
		if seen[bn] {
			t.Fatalf("duplicate bill number %s in %v", bn, got)
		}
		seen[bn] = true
	}
	if len(got) != n {
		t.Fatalf("created %d bills, want %d", len(got), n)
	}
}

func TestCreateBillSequenceExhausted(t *testing.T) {
	april := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeBillRepo{bills: []model.Bill{{ID: "b1", BillNumber: "GT-24049999"}}}
	uc := newTestUseCase(repo, &fakeStoreRepo{profile: storeProfile("General Traders")}, &serialLocker{}, april)

	_, err := uc.CreateBill(context.Background(), billInput())
	if !errors.Is(err, apperr.ErrSequenceExhausted) {
		t.Fatalf("CreateBill() error = %v, want ErrSequenceExhausted", err)
	}
	if len(repo.numbers()) != 1 {
		t.Error("exhausted sequence must not insert a bill")
	}
}
