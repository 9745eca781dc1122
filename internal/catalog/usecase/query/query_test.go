package query

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	"github.com/tair/barcode-inventory/internal/catalog/repository"
	"github.com/tair/barcode-inventory/pkg/apperr"
	"github.com/tair/barcode-inventory/pkg/storage"
)

func newProductRepo(t *testing.T) *repository.FileProductRepository {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return repository.NewFileProductRepository(store)
}

func TestGetProduct(t *testing.T) {
	products := newProductRepo(t)
	seed := map[string]domain.Product{
		"123456780001": {Name: "Shirt", CategoryID: "cat_0", DefaultCost: decimal.NewFromInt(25)},
	}
	if err := products.SaveAll(seed); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := NewGetProductHandler(products)

	product, err := h.Handle(GetProductQuery{Barcode: "123456780001"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if product.Name != "Shirt" {
		t.Fatalf("unexpected product %+v", product)
	}

	_, err = h.Handle(GetProductQuery{Barcode: "000000000000"})
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Key != apperr.KeyProductNotFound {
		t.Fatalf("expected product not found, got %v", err)
	}

	_, err = h.Handle(GetProductQuery{})
	if !errors.As(err, &ae) || ae.Key != apperr.KeyBarcodeRequired {
		t.Fatalf("expected barcode required, got %v", err)
	}
}

func TestListCategoriesAlwaysIncludesDefault(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	h := NewListCategoriesHandler(repository.NewFileCategoryRepository(store))

	categories, err := h.Handle(ListCategoriesQuery{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if categories[domain.DefaultCategoryID] != domain.DefaultCategoryName {
		t.Fatalf("default category missing: %v", categories)
	}
}
