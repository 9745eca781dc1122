package query

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/ledger/domain"
)

// ValuationQuery represents the query to compute the current inventory value
type ValuationQuery struct{}

// ItemValuation is the per-barcode slice of the valuation report.
type ItemValuation struct {
	Barcode string          `json:"itemCode"`
	Name    string          `json:"name"`
	Units   int             `json:"units"`
	Value   decimal.Decimal `json:"value"`
}

// ValuationReport sums stock and stock value (stock x per-unit cost) across
// every cell.
type ValuationReport struct {
	TotalUnits int             `json:"totalUnits"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Items      []ItemValuation `json:"items"`
}

// ValuationHandler handles the valuation query
type ValuationHandler struct {
	inventory domain.InventoryRepository
	products  domain.ProductLookup
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(inventory domain.InventoryRepository, products domain.ProductLookup) *ValuationHandler {
	return &ValuationHandler{inventory: inventory, products: products}
}

// Handle executes the valuation query
func (h *ValuationHandler) Handle(ValuationQuery) (*ValuationReport, error) {
	inventory, err := h.inventory.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	report := &ValuationReport{
		TotalValue: decimal.Zero,
		Items:      make([]ItemValuation, 0, len(inventory)),
	}

	for barcode, cells := range inventory {
		name := "Unknown Item"
		if info, ok, err := h.products.Lookup(barcode); err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		} else if ok {
			name = info.Name
		}

		item := ItemValuation{Barcode: barcode, Name: name, Value: decimal.Zero}
		for _, cell := range cells {
			item.Units += cell.Stock
			item.Value = item.Value.Add(cell.Cost.Mul(decimal.NewFromInt(int64(cell.Stock))))
		}

		report.TotalUnits += item.Units
		report.TotalValue = report.TotalValue.Add(item.Value)
		report.Items = append(report.Items, item)
	}

	sort.Slice(report.Items, func(i, j int) bool {
		return report.Items[i].Barcode < report.Items[j].Barcode
	})
	return report, nil
}
