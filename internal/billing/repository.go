package billing

import (
	"context"

	"github.com/kiranadev/inventory-billing-service/internal/model"
)

type Repository interface {
	// Create inserts the bill and its line items in a single transaction.
	// A bill-number collision with a concurrent writer surfaces as
	// apperr.ErrDuplicateBillNumber.
	Create(ctx context.Context, bill *model.Bill) error

	FindByID(ctx context.Context, id string) (*model.Bill, error)
	FindAll(ctx context.Context) ([]model.Bill, error)

	// ListNumbersInRange returns bill numbers in the half-open lexicographic
	// range [low, high), newest first.
	ListNumbersInRange(ctx context.Context, low, high string) ([]string, error)
}
