package stock

import (
	"context"

	"github.com/kiranadev/inventory-billing-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, receipt *model.StockReceipt) error
	FindByID(ctx context.Context, id string) (*model.StockReceipt, error)
	FindAll(ctx context.Context) ([]model.StockReceipt, error)
	Update(ctx context.Context, receipt *model.StockReceipt) error
	Delete(ctx context.Context, id string) error
}
