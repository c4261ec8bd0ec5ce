package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/availability"
	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/product"
	"github.com/kiranadev/inventory-billing-service/internal/product/dto"
	"github.com/kiranadev/inventory-billing-service/pkg/cache"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"github.com/kiranadev/inventory-billing-service/pkg/search"
	"go.uber.org/zap"
)

const (
	allProductsCacheKey = "products:all"
	productCacheTTL     = 5 * time.Minute
	productIndex        = "products"
)

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, cacheClient *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cacheClient,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	now := time.Now()
	p := &model.Product{
		BaseModel:          model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ProductName:        input.ProductName,
		ManufactureCompany: input.ManufactureCompany,
		Size:               input.Size,
		SellingPrice:       input.SellingPrice,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, query string) ([]model.Product, error) {
	if query != "" {
		return uc.searchProducts(ctx, query)
	}

	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, allProductsCacheKey).Result(); err == nil {
			var products []model.Product
			if json.Unmarshal([]byte(val), &products) == nil {
				return products, nil
			}
		}
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			uc.cache.Client.Set(ctx, allProductsCacheKey, data, productCacheTTL)
		}
	}

	return products, nil
}

func (uc *productUseCase) searchProducts(ctx context.Context, query string) ([]model.Product, error) {
	if uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", query),
					"fields": []string{"productName^3", "manufactureCompany"},
				},
			},
		}
		res, err := uc.es.Search(ctx, productIndex, q)
		if err == nil {
			products := []model.Product{}
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					products = append(products, p)
				}
			}
			return products, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	return uc.repo.Search(ctx, query)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "product %s", id)
	}

	p.ProductName = input.ProductName
	p.ManufactureCompany = input.ManufactureCompany
	p.Size = input.Size
	p.SellingPrice = input.SellingPrice
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.Wrap(apperr.ErrNotFound, "product %s", id)
	}

	// Receipts and bills keep their product_id reference; only the catalog
	// entry goes away.
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}

	return nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.cache.Client.Del(ctx, allProductsCacheKey, availability.CacheKey)
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"productName": { "type": "text" },
				"manufactureCompany": { "type": "text" },
				"size": { "type": "keyword" },
				"sellingPrice": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}
