package migrate

import (
	"testing"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/tair/barcode-inventory/internal/catalog/domain"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func loadSettings(t *testing.T, store *storage.Store) Settings {
	t.Helper()
	var settings Settings
	if err := store.Load(storage.CollectionSettings, &settings); err != nil {
		t.Fatalf("load settings: %v", err)
	}
	return settings
}

func TestRunOnFreshStore(t *testing.T) {
	store := newTestStore(t)

	if err := Run(store, Steps()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := loadSettings(t, store).SchemaVersion; got != 3 {
		t.Fatalf("expected schema version 3, got %d", got)
	}

	categories := make(map[string]string)
	if err := store.Load(storage.CollectionCategories, &categories); err != nil {
		t.Fatalf("load categories: %v", err)
	}
	if categories[catalogdomain.DefaultCategoryID] != catalogdomain.DefaultCategoryName {
		t.Fatalf("default category not seeded: %v", categories)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := Run(store, Steps()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(store, Steps()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := loadSettings(t, store).SchemaVersion; got != 3 {
		t.Fatalf("expected schema version 3, got %d", got)
	}
}

func TestStepsBelowStoredVersionAreSkipped(t *testing.T) {
	store := newTestStore(t)

	// Data that step 3 would rewrite; at version 3 it must stay untouched.
	inventory := map[string]map[string]ledgerdomain.Cell{
		"123456780001": {"ONE_SIZE": {Stock: 5}},
	}
	if err := store.Save(storage.CollectionInventory, inventory); err != nil {
		t.Fatalf("save inventory: %v", err)
	}
	if err := store.Save(storage.CollectionSettings, Settings{SchemaVersion: 3}); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	if err := Run(store, Steps()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := make(map[string]map[string]ledgerdomain.Cell)
	if err := store.Load(storage.CollectionInventory, &got); err != nil {
		t.Fatalf("load inventory: %v", err)
	}
	if _, ok := got["123456780001"]["ONE_SIZE"]; !ok {
		t.Fatalf("step ran despite stored version: %v", got)
	}
}

func TestSeedDefaultCategoryRepairsProducts(t *testing.T) {
	store := newTestStore(t)

	products := map[string]catalogdomain.Product{
		"123456780001": {Name: "Shirt"},
		"123456780002": {Name: "Pants", CategoryID: "cat_7"},
	}
	if err := store.Save(storage.CollectionProducts, products); err != nil {
		t.Fatalf("save products: %v", err)
	}

	if err := Run(store, Steps()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := make(map[string]catalogdomain.Product)
	if err := store.Load(storage.CollectionProducts, &got); err != nil {
		t.Fatalf("load products: %v", err)
	}
	if got["123456780001"].CategoryID != catalogdomain.DefaultCategoryID {
		t.Fatalf("missing category not repaired: %+v", got["123456780001"])
	}
	if got["123456780002"].CategoryID != "cat_7" {
		t.Fatalf("existing category must stay, got %+v", got["123456780002"])
	}
}

func TestRenameOneSizeCells(t *testing.T) {
	store := newTestStore(t)

	inventory := map[string]map[string]ledgerdomain.Cell{
		"123456780001": {
			"ONE_SIZE": {Stock: 5, Cost: decimal.NewFromInt(2)},
		},
		"123456780002": {
			"ONE_SIZE": {Stock: 9},
			"F":        {Stock: 1},
		},
	}
	if err := store.Save(storage.CollectionInventory, inventory); err != nil {
		t.Fatalf("save inventory: %v", err)
	}

	if err := Run(store, Steps()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := make(map[string]map[string]ledgerdomain.Cell)
	if err := store.Load(storage.CollectionInventory, &got); err != nil {
		t.Fatalf("load inventory: %v", err)
	}

	cell, ok := got["123456780001"]["F"]
	if !ok || cell.Stock != 5 {
		t.Fatalf("legacy cell not renamed: %v", got["123456780001"])
	}
	if _, ok := got["123456780001"]["ONE_SIZE"]; ok {
		t.Fatal("legacy key not removed")
	}

	// An existing F cell wins; the legacy one is dropped, not merged.
	if got["123456780002"]["F"].Stock != 1 {
		t.Fatalf("existing F cell overwritten: %v", got["123456780002"])
	}
	if _, ok := got["123456780002"]["ONE_SIZE"]; ok {
		t.Fatal("legacy key not removed when F exists")
	}
}
