package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/model"
	"github.com/kiranadev/inventory-billing-service/internal/product/dto"
	"go.uber.org/zap"
)

type fakeRepo struct {
	products map[string]model.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]model.Product{}}
}

func (f *fakeRepo) Create(_ context.Context, p *model.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Search(_ context.Context, query string) ([]model.Product, error) {
	return f.FindAll(context.Background())
}

func (f *fakeRepo) Update(_ context.Context, p *model.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) Fatal(string, ...zap.Field) {}
func (nopLogger) Sync() error                { return nil }

func TestCreateProductAssignsIdentity(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, nopLogger{})

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		ProductName:        "Cement 50kg",
		ManufactureCompany: "UltraTech",
		SellingPrice:       420,
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("expected a generated id")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if _, ok := repo.products[p.ID]; !ok {
		t.Error("product not persisted")
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), nil, nil, nopLogger{})

	_, err := uc.UpdateProduct(context.Background(), "missing", &dto.UpdateProductInput{ProductName: "x"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("UpdateProduct() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), nil, nil, nopLogger{})

	if err := uc.DeleteProduct(context.Background(), "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("DeleteProduct() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProductMutatesFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, nopLogger{})

	created, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{ProductName: "Old", SellingPrice: 10})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := uc.UpdateProduct(context.Background(), created.ID, &dto.UpdateProductInput{
		ProductName:  "New",
		SellingPrice: 12,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ProductName != "New" || updated.SellingPrice != 12 {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.CreatedAt) && !updated.UpdatedAt.Equal(created.CreatedAt) {
		t.Error("updated_at should move forward")
	}
}
