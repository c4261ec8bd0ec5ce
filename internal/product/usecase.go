package product

import (
	"context"

	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	// ListProducts returns the full catalog, or a search result when query is
	// non-empty.
	ListProducts(ctx context.Context, query string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
