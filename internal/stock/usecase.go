package stock

import (
	"context"

	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/stock/dto"
)

type UseCase interface {
	CreateReceipt(ctx context.Context, input *dto.CreateReceiptInput) (*model.StockReceipt, error)
	GetReceipt(ctx context.Context, id string) (*model.StockReceipt, error)
	ListReceipts(ctx context.Context) ([]model.StockReceipt, error)
	UpdateReceipt(ctx context.Context, id string, input *dto.UpdateReceiptInput) (*model.StockReceipt, error)
	DeleteReceipt(ctx context.Context, id string) error
}
