package usecase

import (
	"context"
	"time"

	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/store"
	"github.com/kiranadev/inventory-billing-service/internal/store/dto"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
)

// The profile is a single row; a fixed id keeps the upsert idempotent.
const profileID = "store"

type storeUseCase struct {
	repo   store.Repository
	logger logger.ZapLogger
}

func NewStoreUseCase(repo store.Repository, log logger.ZapLogger) store.UseCase {
	return &storeUseCase{repo: repo, logger: log}
}

func (uc *storeUseCase) GetProfile(ctx context.Context) (*model.StoreProfile, error) {
	return uc.repo.Get(ctx)
}

func (uc *storeUseCase) SaveProfile(ctx context.Context, input *dto.SaveProfileInput) (*model.StoreProfile, error) {
	var logoURL *string
	if input.LogoURL != "" {
		logoURL = &input.LogoURL
	}

	profile := &model.StoreProfile{
		ID:        profileID,
		StoreName: input.StoreName,
		LogoURL:   logoURL,
		Address:   input.Address,
		Terms:     input.Terms,
		Contacts:  input.Contacts,
		UpdatedAt: time.Now(),
	}

	if err := uc.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
