package store

import (
	"context"

	"github.com/kiranadev/inventory-billing-service/internal/model"
)

type Repository interface {
	// Get returns the single store profile row, or nil when none exists yet.
	Get(ctx context.Context) (*model.StoreProfile, error)
	Upsert(ctx context.Context, profile *model.StoreProfile) error
}
