package query

import (
	"fmt"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
)

// ListProductsQuery represents the query to list all products
type ListProductsQuery struct{}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	products domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(products domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{products: products}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ListProductsQuery) (map[string]domain.Product, error) {
	products, err := h.products.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}
