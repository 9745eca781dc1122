package command

import (
	"fmt"
	"sync"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID string
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
	lock       sync.Locker
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(categories domain.CategoryRepository, products domain.ProductRepository, lock sync.Locker) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{categories: categories, products: products, lock: lock}
}

// Handle executes the delete category command. Every product referencing the
// category is reassigned to the default category before removal, so no
// product is ever left pointing at a missing id.
func (h *DeleteCategoryHandler) Handle(cmd DeleteCategoryCommand) error {
	if cmd.ID == "" {
		return apperr.InvalidInput(apperr.KeyInvalidData)
	}
	if cmd.ID == domain.DefaultCategoryID {
		return apperr.ProtectedDefault()
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	categories, err := h.categories.All()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	products, err := h.products.All()
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	if _, ok := categories[cmd.ID]; !ok {
		return apperr.NotFound(apperr.KeyCategoryNotFound)
	}

	delete(categories, cmd.ID)

	for barcode, product := range products {
		if product.CategoryID == cmd.ID {
			product.CategoryID = domain.DefaultCategoryID
			products[barcode] = product
		}
	}

	if err := h.categories.SaveAll(categories); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	if err := h.products.SaveAll(products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}
