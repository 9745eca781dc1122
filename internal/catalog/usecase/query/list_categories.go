package query

import (
	"fmt"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
)

// ListCategoriesQuery represents the query to list all categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	categories domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(categories domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{categories: categories}
}

// Handle executes the list categories query. The result is the raw id -> name
// map, the default category included.
func (h *ListCategoriesHandler) Handle(ListCategoriesQuery) (map[string]string, error) {
	categories, err := h.categories.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}
