package command

import (
	"fmt"
	"sync"
	"time"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	categories domain.CategoryRepository
	lock       sync.Locker
	now        func() time.Time
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(categories domain.CategoryRepository, lock sync.Locker) *CreateCategoryHandler {
	return &CreateCategoryHandler{categories: categories, lock: lock, now: time.Now}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, apperr.InvalidInput(apperr.KeyCategoryNameEmpty)
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	categories, err := h.categories.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	// Time-based id; probe forward so two creations within the same
	// millisecond cannot silently overwrite each other.
	ms := h.now().UnixMilli()
	id := fmt.Sprintf("cat_%d", ms)
	for {
		if _, exists := categories[id]; !exists {
			break
		}
		ms++
		id = fmt.Sprintf("cat_%d", ms)
	}

	categories[id] = cmd.Name
	if err := h.categories.SaveAll(categories); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}

	return &domain.Category{ID: id, Name: cmd.Name}, nil
}
