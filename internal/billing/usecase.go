package billing

import (
	"context"
	"time"

	"github.com/kiranadev/inventory-billing-service/internal/billing/dto"
	"github.com/kiranadev/inventory-billing-service/internal/model"
)

type UseCase interface {
	// CreateBill generates the next bill number and inserts the bill as one
	// atomic step with respect to other concurrent creations for the store.
	CreateBill(ctx context.Context, input *dto.CreateBillInput) (*model.Bill, error)

	GetBill(ctx context.Context, id string) (*model.Bill, error)
	ListBills(ctx context.Context) ([]model.Bill, error)
}

// Locker serializes bill-number generation+insertion per store.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

// Publisher emits bill lifecycle events to the broker.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
