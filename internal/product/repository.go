package product

import (
	"context"

	"github.com/kiranadev/inventory-billing-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	// Search is the DB fallback when Elasticsearch is unavailable.
	Search(ctx context.Context, query string) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
}
