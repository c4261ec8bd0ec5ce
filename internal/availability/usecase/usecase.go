package usecase

import (
	"context"
	"encoding/json"

	"github.com/kiranadev/inventory-billing-service/internal/availability"
	"github.com/kiranadev/inventory-billing-service/internal/billing"
	"github.com/kiranadev/inventory-billing-service/internal/product"
	"github.com/kiranadev/inventory-billing-service/internal/stock"
	"github.com/kiranadev/inventory-billing-service/pkg/cache"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"go.uber.org/zap"
)

type availabilityUseCase struct {
	productRepo product.Repository
	stockRepo   stock.Repository
	billRepo    billing.Repository
	cache       *cache.RedisClient
	logger      logger.ZapLogger
}

func NewAvailabilityUseCase(
	productRepo product.Repository,
	stockRepo stock.Repository,
	billRepo billing.Repository,
	cacheClient *cache.RedisClient,
	log logger.ZapLogger,
) availability.UseCase {
	return &availabilityUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		billRepo:    billRepo,
		cache:       cacheClient,
		logger:      log,
	}
}

func (uc *availabilityUseCase) Availability(ctx context.Context) (map[string]int, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, availability.CacheKey).Result(); err == nil {
			var cached map[string]int
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	receipts, err := uc.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := uc.billRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := availability.Compute(products, receipts, bills)

	if uc.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := uc.cache.Client.Set(ctx, availability.CacheKey, data, availability.CacheTTL).Err(); err != nil {
				uc.logger.Warn("failed to cache availability map", zap.Error(err))
			}
		}
	}

	return result, nil
}
