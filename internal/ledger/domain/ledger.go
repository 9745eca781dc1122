package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects how a transaction amount is applied to a cell.
type Mode string

const (
	ModeAdd    Mode = "add"    // relative increase
	ModeCut    Mode = "cut"    // relative decrease, bounded by current stock
	ModeAdjust Mode = "adjust" // absolute set
)

// Valid reports whether m is one of the three transaction modes.
func (m Mode) Valid() bool {
	return m == ModeAdd || m == ModeCut || m == ModeAdjust
}

// EntryType tags a transaction record with the mode that produced it.
type EntryType string

const (
	TypeAdded    EntryType = "Added"
	TypeCut      EntryType = "Cut"
	TypeAdjusted EntryType = "Adjusted"
)

// ErrInsufficientStock is returned by Cell.Apply when a cut would drive
// stock negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// Cell is the stock/cost state of one (barcode, size) pair.
type Cell struct {
	Stock int             `json:"stock"`
	Cost  decimal.Decimal `json:"cost"`
}

// Apply computes the cell transition for one transaction. It returns the new
// cell, the signed stock delta actually applied, and the record type tag.
// The per-unit cost is carried forward unchanged; cost updates go through the
// catalog, not through transactions.
func (c Cell) Apply(mode Mode, amount int) (Cell, int, EntryType, error) {
	switch mode {
	case ModeCut:
		if c.Stock < amount {
			return c, 0, "", ErrInsufficientStock
		}
		return Cell{Stock: c.Stock - amount, Cost: c.Cost}, -amount, TypeCut, nil
	case ModeAdd:
		return Cell{Stock: c.Stock + amount, Cost: c.Cost}, amount, TypeAdded, nil
	case ModeAdjust:
		return Cell{Stock: amount, Cost: c.Cost}, amount - c.Stock, TypeAdjusted, nil
	default:
		return c, 0, "", fmt.Errorf("unknown mode %q", mode)
	}
}

// Record is one immutable entry of the transaction log. ID is the true key;
// the timestamp is kept for display and sorting only. Size is a first-class
// field so a revert never has to parse it back out of the item label.
type Record struct {
	ID         string          `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Barcode    string          `json:"itemCode"`
	ItemName   string          `json:"itemName"`
	Size       string          `json:"size"`
	Amount     int             `json:"amount"`
	Type       EntryType       `json:"type"`
	NewStock   int             `json:"newStock"`
	Cost       decimal.Decimal `json:"cost"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	TotalSales decimal.Decimal `json:"totalSales"`
}

// ProductInfo is the slice of a catalog entry the ledger needs for labels
// and cost seeding.
type ProductInfo struct {
	Name        string
	DefaultCost decimal.Decimal
}

// ProductLookup resolves a barcode to its catalog entry.
type ProductLookup interface {
	Lookup(barcode string) (ProductInfo, bool, error)
}

// InventoryRepository defines the contract for cell data access. Cells are
// keyed by barcode, then by free-form size label.
type InventoryRepository interface {
	All() (map[string]map[string]Cell, error)
	SaveAll(inventory map[string]map[string]Cell) error
}

// TransactionRepository defines the contract for the append-only log.
type TransactionRepository interface {
	All() ([]Record, error)
	SaveAll(records []Record) error
}
