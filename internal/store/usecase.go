package store

import (
	"context"

	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/store/dto"
)

type UseCase interface {
	GetProfile(ctx context.Context) (*model.StoreProfile, error)
	SaveProfile(ctx context.Context, input *dto.SaveProfileInput) (*model.StoreProfile, error)
}
