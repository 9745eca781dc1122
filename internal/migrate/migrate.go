// Package migrate upgrades the on-disk data format at startup. Steps are
// ordered, idempotent, and gated by an integer schema version persisted in
// the settings collection; a step runs only when its version is above the
// stored one.
package migrate

import (
	"fmt"
	"sort"

	catalogdomain "github.com/tair/barcode-inventory/internal/catalog/domain"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/logger"
	"github.com/tair/barcode-inventory/pkg/storage"
)

// Settings is the persisted shape of the settings collection.
type Settings struct {
	SchemaVersion int `json:"schemaVersion"`
}

// Step is one upgrade of the on-disk format.
type Step struct {
	Version int
	Name    string
	Apply   func(store *storage.Store) error
}

// Steps returns the shipped migration steps in order.
func Steps() []Step {
	return []Step{
		{Version: 1, Name: "seed default category", Apply: seedDefaultCategory},
		{Version: 2, Name: "backfill product default cost", Apply: backfillDefaultCost},
		{Version: 3, Name: "rename ONE_SIZE cells to F", Apply: renameOneSizeCells},
	}
}

// Run applies every step newer than the stored schema version, persisting the
// version after each successful step so a crash resumes where it left off.
func Run(store *storage.Store, steps []Step) error {
	store.Lock()
	defer store.Unlock()

	var settings Settings
	if err := store.Load(storage.CollectionSettings, &settings); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].Version < steps[j].Version })

	for _, step := range steps {
		if step.Version <= settings.SchemaVersion {
			continue
		}
		logger.Logger.Info().
			Int("version", step.Version).
			Str("name", step.Name).
			Msg("Running migration step")

		if err := step.Apply(store); err != nil {
			return fmt.Errorf("migration step %d (%s) failed: %w", step.Version, step.Name, err)
		}

		settings.SchemaVersion = step.Version
		if err := store.Save(storage.CollectionSettings, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}
	return nil
}

// seedDefaultCategory guarantees the reserved default category exists and
// that no product references a missing one by pointing it at the default.
func seedDefaultCategory(store *storage.Store) error {
	categories := make(map[string]string)
	if err := store.Load(storage.CollectionCategories, &categories); err != nil {
		return err
	}
	products := make(map[string]catalogdomain.Product)
	if err := store.Load(storage.CollectionProducts, &products); err != nil {
		return err
	}

	if _, ok := categories[catalogdomain.DefaultCategoryID]; !ok {
		categories[catalogdomain.DefaultCategoryID] = catalogdomain.DefaultCategoryName
	}
	for barcode, product := range products {
		if product.CategoryID == "" {
			product.CategoryID = catalogdomain.DefaultCategoryID
			products[barcode] = product
		}
	}

	if err := store.Save(storage.CollectionCategories, categories); err != nil {
		return err
	}
	return store.Save(storage.CollectionProducts, products)
}

// backfillDefaultCost rewrites the products collection through the typed
// model, so entries predating the default_cost field gain it at zero.
func backfillDefaultCost(store *storage.Store) error {
	products := make(map[string]catalogdomain.Product)
	if err := store.Load(storage.CollectionProducts, &products); err != nil {
		return err
	}
	return store.Save(storage.CollectionProducts, products)
}

// renameOneSizeCells moves cells keyed by the legacy ONE_SIZE label to F.
// A barcode already holding an F cell keeps it untouched.
func renameOneSizeCells(store *storage.Store) error {
	const legacy = "ONE_SIZE"
	const replacement = "F"

	inventory := make(map[string]map[string]ledgerdomain.Cell)
	if err := store.Load(storage.CollectionInventory, &inventory); err != nil {
		return err
	}

	for _, cells := range inventory {
		cell, ok := cells[legacy]
		if !ok {
			continue
		}
		if _, taken := cells[replacement]; !taken {
			cells[replacement] = cell
		}
		delete(cells, legacy)
	}

	return store.Save(storage.CollectionInventory, inventory)
}
