package repository

import (
	"github.com/tair/barcode-inventory/internal/catalog/domain"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/storage"
)

// FileProductRepository stores the barcode -> product map as one JSON
// collection.
type FileProductRepository struct {
	store *storage.Store
}

func NewFileProductRepository(store *storage.Store) *FileProductRepository {
	return &FileProductRepository{store: store}
}

func (r *FileProductRepository) All() (map[string]domain.Product, error) {
	products := make(map[string]domain.Product)
	if err := r.store.Load(storage.CollectionProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *FileProductRepository) SaveAll(products map[string]domain.Product) error {
	return r.store.Save(storage.CollectionProducts, products)
}

// Lookup implements the ledger's ProductLookup contract.
func (r *FileProductRepository) Lookup(barcode string) (ledgerdomain.ProductInfo, bool, error) {
	products, err := r.All()
	if err != nil {
		return ledgerdomain.ProductInfo{}, false, err
	}
	p, ok := products[barcode]
	if !ok {
		return ledgerdomain.ProductInfo{}, false, nil
	}
	return ledgerdomain.ProductInfo{Name: p.Name, DefaultCost: p.DefaultCost}, true, nil
}

// FileCategoryRepository stores the id -> name category map as one JSON
// collection.
type FileCategoryRepository struct {
	store *storage.Store
}

func NewFileCategoryRepository(store *storage.Store) *FileCategoryRepository {
	return &FileCategoryRepository{store: store}
}

func (r *FileCategoryRepository) All() (map[string]string, error) {
	categories := make(map[string]string)
	if err := r.store.Load(storage.CollectionCategories, &categories); err != nil {
		return nil, err
	}
	// The reserved default category always exists.
	if _, ok := categories[domain.DefaultCategoryID]; !ok {
		categories[domain.DefaultCategoryID] = domain.DefaultCategoryName
	}
	return categories, nil
}

func (r *FileCategoryRepository) SaveAll(categories map[string]string) error {
	return r.store.Save(storage.CollectionCategories, categories)
}
