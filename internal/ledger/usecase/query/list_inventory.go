package query

import (
	"fmt"

	"github.com/tair/barcode-inventory/internal/ledger/domain"
)

// ListInventoryQuery represents the query to read the full cell map
type ListInventoryQuery struct{}

// ListInventoryHandler handles list inventory query
type ListInventoryHandler struct {
	inventory domain.InventoryRepository
}

// NewListInventoryHandler creates a new list inventory handler
func NewListInventoryHandler(inventory domain.InventoryRepository) *ListInventoryHandler {
	return &ListInventoryHandler{inventory: inventory}
}

// Handle executes the list inventory query
func (h *ListInventoryHandler) Handle(ListInventoryQuery) (map[string]map[string]domain.Cell, error) {
	inventory, err := h.inventory.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return inventory, nil
}
