package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/internal/ledger/repository"
	"github.com/tair/barcode-inventory/pkg/storage"
)

type staticLookup map[string]domain.ProductInfo

func (l staticLookup) Lookup(barcode string) (domain.ProductInfo, bool, error) {
	info, ok := l[barcode]
	return info, ok, nil
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func TestListTransactionsOrdering(t *testing.T) {
	store := newTestStore(t)
	transactions := repository.NewFileTransactionRepository(store)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seed := []domain.Record{
		{ID: "a", Timestamp: base},
		{ID: "b", Timestamp: base.Add(time.Minute)},
		{ID: "c", Timestamp: base.Add(2 * time.Minute)},
	}
	if err := transactions.SaveAll(seed); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := NewListTransactionsHandler(transactions)

	ascending, err := h.Handle(ListTransactionsQuery{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if ascending[0].ID != "a" || ascending[2].ID != "c" {
		t.Fatalf("expected stored order, got %v", ascending)
	}

	descending, err := h.Handle(ListTransactionsQuery{Descending: true})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if descending[0].ID != "c" || descending[2].ID != "a" {
		t.Fatalf("expected newest first, got %v", descending)
	}
}

func TestListTransactionsEmptyLog(t *testing.T) {
	store := newTestStore(t)
	h := NewListTransactionsHandler(repository.NewFileTransactionRepository(store))

	records, err := h.Handle(ListTransactionsQuery{Descending: true})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", records)
	}
}

func TestListInventory(t *testing.T) {
	store := newTestStore(t)
	inventory := repository.NewFileInventoryRepository(store)
	seed := map[string]map[string]domain.Cell{
		"123456780001": {"M": {Stock: 3, Cost: decimal.NewFromInt(2)}},
	}
	if err := inventory.SaveAll(seed); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := NewListInventoryHandler(inventory)
	got, err := h.Handle(ListInventoryQuery{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got["123456780001"]["M"].Stock != 3 {
		t.Fatalf("unexpected inventory %v", got)
	}
}

func TestValuationReport(t *testing.T) {
	store := newTestStore(t)
	inventory := repository.NewFileInventoryRepository(store)
	seed := map[string]map[string]domain.Cell{
		"123456780001": {
			"M": {Stock: 10, Cost: decimal.NewFromFloat(2.5)},
			"L": {Stock: 4, Cost: decimal.NewFromInt(3)},
		},
		"123456780002": {
			"F": {Stock: 2, Cost: decimal.NewFromInt(7)},
		},
	}
	if err := inventory.SaveAll(seed); err != nil {
		t.Fatalf("save: %v", err)
	}

	products := staticLookup{"123456780001": {Name: "Shirt"}}
	h := NewValuationHandler(inventory, products)

	report, err := h.Handle(ValuationQuery{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	if report.TotalUnits != 16 {
		t.Fatalf("expected 16 units, got %d", report.TotalUnits)
	}
	// 10*2.5 + 4*3 + 2*7 = 51
	if !report.TotalValue.Equal(decimal.NewFromInt(51)) {
		t.Fatalf("expected total value 51, got %s", report.TotalValue)
	}
	if len(report.Items) != 2 {
		t.Fatalf("expected 2 items, got %v", report.Items)
	}
	if report.Items[0].Barcode != "123456780001" || report.Items[0].Name != "Shirt" {
		t.Fatalf("expected sorted items with catalog names, got %v", report.Items)
	}
	if report.Items[1].Name != "Unknown Item" {
		t.Fatalf("expected fallback name, got %v", report.Items[1])
	}
	if report.Items[0].Units != 14 || !report.Items[0].Value.Equal(decimal.NewFromInt(37)) {
		t.Fatalf("unexpected per-item aggregation %v", report.Items[0])
	}
}
