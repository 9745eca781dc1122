package command

import (
	"fmt"
	"sync"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	Barcode string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	products  domain.ProductRepository
	inventory ledgerdomain.InventoryRepository
	lock      sync.Locker
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(products domain.ProductRepository, inventory ledgerdomain.InventoryRepository, lock sync.Locker) *DeleteProductHandler {
	return &DeleteProductHandler{products: products, inventory: inventory, lock: lock}
}

// Handle executes the delete product command. Deletion cascades to every
// inventory cell of the barcode.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.Barcode == "" {
		return apperr.InvalidInput(apperr.KeyBarcodeRequired)
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	products, err := h.products.All()
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	inventory, err := h.inventory.All()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	deleted := false
	if _, ok := products[cmd.Barcode]; ok {
		delete(products, cmd.Barcode)
		deleted = true
	}
	if _, ok := inventory[cmd.Barcode]; ok {
		delete(inventory, cmd.Barcode)
		deleted = true
	}
	if !deleted {
		return apperr.NotFound(apperr.KeyProductNotFound)
	}

	if err := h.products.SaveAll(products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	if err := h.inventory.SaveAll(inventory); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	return nil
}
