package command

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// Shown on records and labels when a barcode has cells but no catalog entry.
const unknownItemName = "Unknown Item"

// ApplyTransactionCommand represents one requested stock mutation. Amount is
// a relative quantity for add/cut and the absolute target level for adjust.
// SalePrice is only meaningful for cut and may be zero.
type ApplyTransactionCommand struct {
	Barcode   string
	Size      string
	Mode      domain.Mode
	Amount    int
	SalePrice decimal.Decimal
}

// UpdatedItem describes the cell state after a transaction.
type UpdatedItem struct {
	Barcode       string          `json:"itemCode"`
	Size          string          `json:"size"`
	NewStockLevel int             `json:"newStockLevel"`
	NewCost       decimal.Decimal `json:"newCost"`
}

// TransactionResult is the full outcome of an accepted transaction.
type TransactionResult struct {
	Message     string        `json:"message"`
	Record      domain.Record `json:"newTransaction"`
	UpdatedItem UpdatedItem   `json:"updatedItem"`
}

// ApplyTransactionHandler handles the apply transaction command
type ApplyTransactionHandler struct {
	inventory    domain.InventoryRepository
	transactions domain.TransactionRepository
	products     domain.ProductLookup
	lock         sync.Locker

	now   func() time.Time
	newID func() string
}

// NewApplyTransactionHandler creates a new apply transaction handler
func NewApplyTransactionHandler(
	inventory domain.InventoryRepository,
	transactions domain.TransactionRepository,
	products domain.ProductLookup,
	lock sync.Locker,
) *ApplyTransactionHandler {
	return &ApplyTransactionHandler{
		inventory:    inventory,
		transactions: transactions,
		products:     products,
		lock:         lock,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Handle executes the apply transaction command: it resolves the (barcode,
// size) cell, applies the mode's stock delta, derives the monetary fields,
// persists the cell set and appends the immutable record to the log before
// returning.
func (h *ApplyTransactionHandler) Handle(cmd ApplyTransactionCommand) (*TransactionResult, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	inventory, err := h.inventory.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	records, err := h.transactions.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	itemName := unknownItemName
	var defaultCost decimal.Decimal
	if info, ok, err := h.products.Lookup(cmd.Barcode); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	} else if ok {
		itemName = info.Name
		defaultCost = info.DefaultCost
	}

	cells, ok := inventory[cmd.Barcode]
	if !ok {
		return nil, apperr.ItemNotFound(cmd.Barcode)
	}

	cell, ok := cells[cmd.Size]
	if !ok {
		// A cut must target an existing size; add/adjust materialize the
		// cell at zero stock with the product's default cost.
		if cmd.Mode == domain.ModeCut {
			return nil, apperr.SizeNotFound(cmd.Size, itemName)
		}
		cell = domain.Cell{Stock: 0, Cost: defaultCost}
	}

	label := fmt.Sprintf("%s (%s)", itemName, cmd.Size)

	next, delta, logType, err := cell.Apply(cmd.Mode, cmd.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return nil, apperr.InsufficientStock(label, cell.Stock)
		}
		return nil, err
	}

	totalCost := cell.Cost.Mul(decimal.NewFromInt(int64(delta)))

	totalSales := decimal.Zero
	if logType == domain.TypeCut {
		totalSales = cmd.SalePrice
	}

	cells[cmd.Size] = next

	record := domain.Record{
		ID:         h.newID(),
		Timestamp:  h.now().UTC(),
		Barcode:    cmd.Barcode,
		ItemName:   label,
		Size:       cmd.Size,
		Amount:     delta,
		Type:       logType,
		NewStock:   next.Stock,
		Cost:       cell.Cost,
		TotalCost:  totalCost,
		TotalSales: totalSales,
	}
	records = append(records, record)

	// Both writes happen before the call reports success; the cell first so
	// a crash in between can never fabricate a log entry for stock that was
	// not applied.
	if err := h.inventory.SaveAll(inventory); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}
	if err := h.transactions.SaveAll(records); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	message := fmt.Sprintf("OK: %s %d %s. New stock: %d", logType, cmd.Amount, label, next.Stock)
	if cmd.Mode == domain.ModeAdjust {
		message = fmt.Sprintf("OK: %s %s stock to %d.", logType, label, next.Stock)
	}

	return &TransactionResult{
		Message: message,
		Record:  record,
		UpdatedItem: UpdatedItem{
			Barcode:       cmd.Barcode,
			Size:          cmd.Size,
			NewStockLevel: next.Stock,
			NewCost:       cell.Cost,
		},
	}, nil
}

func validate(cmd ApplyTransactionCommand) error {
	if cmd.Barcode == "" || cmd.Size == "" || !cmd.Mode.Valid() {
		return apperr.InvalidInput(apperr.KeyInvalidData)
	}
	switch cmd.Mode {
	case domain.ModeAdd, domain.ModeCut:
		if cmd.Amount < 1 {
			return apperr.InvalidInput(apperr.KeyInvalidData)
		}
	case domain.ModeAdjust:
		if cmd.Amount < 0 {
			return apperr.InvalidInput(apperr.KeyInvalidData)
		}
	}
	return nil
}
