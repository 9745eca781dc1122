package query

import (
	"fmt"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// GetProductQuery represents the query to fetch one product by barcode
type GetProductQuery struct {
	Barcode string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	products domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(products domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{products: products}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.Barcode == "" {
		return nil, apperr.InvalidInput(apperr.KeyBarcodeRequired)
	}

	products, err := h.products.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	product, ok := products[q.Barcode]
	if !ok {
		return nil, apperr.NotFound(apperr.KeyProductNotFound)
	}
	return &product, nil
}
