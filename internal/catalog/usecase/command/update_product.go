package command

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// UpdateProductCommand represents the command to rename a product and update
// its costs. SizeCosts overwrites the per-unit cost of existing or
// newly-created cells while preserving their stock.
type UpdateProductCommand struct {
	Barcode     string
	Name        string
	DefaultCost decimal.Decimal
	SizeCosts   map[string]decimal.Decimal
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	products  domain.ProductRepository
	inventory ledgerdomain.InventoryRepository
	lock      sync.Locker
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(products domain.ProductRepository, inventory ledgerdomain.InventoryRepository, lock sync.Locker) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, inventory: inventory, lock: lock}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.Barcode == "" {
		return nil, apperr.InvalidInput(apperr.KeyBarcodeRequired)
	}
	if cmd.Name == "" {
		return nil, apperr.InvalidInput(apperr.KeyNameEmpty)
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	products, err := h.products.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	inventory, err := h.inventory.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	product, ok := products[cmd.Barcode]
	if !ok {
		return nil, apperr.NotFound(apperr.KeyProductNotFound)
	}

	product.Name = cmd.Name
	product.DefaultCost = cmd.DefaultCost
	products[cmd.Barcode] = product

	cells, ok := inventory[cmd.Barcode]
	if !ok {
		cells = make(map[string]ledgerdomain.Cell)
		inventory[cmd.Barcode] = cells
	}
	for size, cost := range cmd.SizeCosts {
		cells[size] = ledgerdomain.Cell{Stock: cells[size].Stock, Cost: cost}
	}

	if err := h.products.SaveAll(products); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}
	if err := h.inventory.SaveAll(inventory); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}

	return &product, nil
}
