package command

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/catalog/domain"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name          string
	PrincipalCode string
	TypeCode      string
	CategoryID    string
	DefaultCost   decimal.Decimal
}

// CreateProductResult is what a successful creation reports back.
type CreateProductResult struct {
	Name    string `json:"name"`
	Barcode string `json:"barcode"`
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	products  domain.ProductRepository
	inventory ledgerdomain.InventoryRepository
	lock      sync.Locker
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(products domain.ProductRepository, inventory ledgerdomain.InventoryRepository, lock sync.Locker) *CreateProductHandler {
	return &CreateProductHandler{products: products, inventory: inventory, lock: lock}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*CreateProductResult, error) {
	if cmd.Name == "" ||
		len(cmd.PrincipalCode) != domain.CodeLength ||
		len(cmd.TypeCode) != domain.CodeLength {
		return nil, apperr.InvalidInput(apperr.KeyInvalidData)
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

	barcode := domain.SynthesizeBarcode(cmd.PrincipalCode, cmd.TypeCode, len(products))
	if _, exists := products[barcode]; exists {
		return nil, apperr.Collision(apperr.KeyBarcodeCollision)
	}

	categoryID := cmd.CategoryID
	if categoryID == "" {
		categoryID = domain.DefaultCategoryID
	}

	products[barcode] = domain.Product{
		Name:        cmd.Name,
		CategoryID:  categoryID,
		DefaultCost: cmd.DefaultCost,
	}
	// The cell set starts empty; sizes are materialized on first transaction.
	inventory[barcode] = make(map[string]ledgerdomain.Cell)

	if err := h.products.SaveAll(products); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}
	if err := h.inventory.SaveAll(inventory); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}

	return &CreateProductResult{Name: cmd.Name, Barcode: barcode}, nil
}
