package facade

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	catalogcmd "github.com/tair/barcode-inventory/internal/catalog/usecase/command"
	"github.com/tair/barcode-inventory/internal/ledger/domain"
	ledgercmd "github.com/tair/barcode-inventory/internal/ledger/usecase/command"
	"github.com/tair/barcode-inventory/pkg/apperr"
	"github.com/tair/barcode-inventory/pkg/storage"
)

func newTestFacade(t *testing.T) *Facade {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return New(store)
}

// TestStockLifecycle walks one product through creation, intake, a sale, a
// rejected oversell, and an exact revert of the sale.
func TestStockLifecycle(t *testing.T) {
	f := newTestFacade(t)

	created, err := f.CreateProduct(catalogcmd.CreateProductCommand{
		Name:          "Shirt",
		PrincipalCode: "1234",
		TypeCode:      "5678",
		DefaultCost:   decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.Barcode != "123456780001" {
		t.Fatalf("unexpected barcode %s", created.Barcode)
	}

	intake, err := f.ProcessTransaction(ledgercmd.ApplyTransactionCommand{
		Barcode: created.Barcode, Size: "M", Mode: domain.ModeAdd, Amount: 20,
	})
	if err != nil {
		t.Fatalf("intake: %v", err)
	}
	if intake.Record.NewStock != 20 || !intake.Record.Cost.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("unexpected intake record %+v", intake.Record)
	}

	sale, err := f.ProcessTransaction(ledgercmd.ApplyTransactionCommand{
		Barcode: created.Barcode, Size: "M", Mode: domain.ModeCut, Amount: 5,
		SalePrice: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("sale: %v", err)
	}
	if sale.Record.NewStock != 15 || sale.Record.Amount != -5 {
		t.Fatalf("unexpected sale record %+v", sale.Record)
	}
	if !sale.Record.TotalSales.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected sales %s", sale.Record.TotalSales)
	}

	_, err = f.ProcessTransaction(ledgercmd.ApplyTransactionCommand{
		Barcode: created.Barcode, Size: "M", Mode: domain.ModeCut, Amount: 50,
	})
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.KindInsufficientStock {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if ae.Context["stock"] != 15 {
		t.Fatalf("unexpected context %v", ae.Context)
	}

	if err := f.DeleteTransaction(sale.Record.ID); err != nil {
		t.Fatalf("revert: %v", err)
	}

	snapshot, err := f.LoadData()
	if err != nil {
		t.Fatalf("load data: %v", err)
	}
	if got := snapshot.Inventory[created.Barcode]["M"].Stock; got != 20 {
		t.Fatalf("expected stock back at 20, got %d", got)
	}
	if len(snapshot.Transactions) != 1 || snapshot.Transactions[0].ID != intake.Record.ID {
		t.Fatalf("expected only the intake record, got %v", snapshot.Transactions)
	}
	if snapshot.Products[created.Barcode].Name != "Shirt" {
		t.Fatalf("unexpected products %v", snapshot.Products)
	}
}

func TestCategoriesIncludeReservedDefault(t *testing.T) {
	f := newTestFacade(t)

	categories, err := f.Categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if categories["cat_0"] != "Default" {
		t.Fatalf("default category missing: %v", categories)
	}
}

func TestValuationThroughFacade(t *testing.T) {
	f := newTestFacade(t)

	created, err := f.CreateProduct(catalogcmd.CreateProductCommand{
		Name: "Shirt", PrincipalCode: "1234", TypeCode: "5678",
		DefaultCost: decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := f.ProcessTransaction(ledgercmd.ApplyTransactionCommand{
		Barcode: created.Barcode, Size: "M", Mode: domain.ModeAdd, Amount: 4,
	}); err != nil {
		t.Fatalf("intake: %v", err)
	}

	report, err := f.Valuation()
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	if report.TotalUnits != 4 || !report.TotalValue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected report %+v", report)
	}
}
