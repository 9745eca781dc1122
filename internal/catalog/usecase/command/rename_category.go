package command

import (
	"fmt"
	"sync"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// RenameCategoryCommand represents the command to rename a category
type RenameCategoryCommand struct {
	ID      string
	NewName string
}

// RenameCategoryHandler handles category rename command
type RenameCategoryHandler struct {
	categories domain.CategoryRepository
	lock       sync.Locker
}

// NewRenameCategoryHandler creates a new rename category handler
func NewRenameCategoryHandler(categories domain.CategoryRepository, lock sync.Locker) *RenameCategoryHandler {
	return &RenameCategoryHandler{categories: categories, lock: lock}
}

// Handle executes the rename category command
func (h *RenameCategoryHandler) Handle(cmd RenameCategoryCommand) (*domain.Category, error) {
	if cmd.ID == "" || cmd.NewName == "" {
		return nil, apperr.InvalidInput(apperr.KeyCategoryNameEmpty)
	}
	if cmd.ID == domain.DefaultCategoryID {
		return nil, apperr.ProtectedDefault()
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	categories, err := h.categories.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if _, ok := categories[cmd.ID]; !ok {
		return nil, apperr.NotFound(apperr.KeyCategoryNotFound)
	}

	categories[cmd.ID] = cmd.NewName
	if err := h.categories.SaveAll(categories); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}

	return &domain.Category{ID: cmd.ID, Name: cmd.NewName}, nil
}
