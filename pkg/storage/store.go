package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/tair/barcode-inventory/pkg/logger"
)

// Collection names backed by <name>.json files in the data directory.
const (
	CollectionProducts     = "products"
	CollectionInventory    = "inventory"
	CollectionCategories   = "categories"
	CollectionTransactions = "transactions"
	CollectionSettings     = "settings"
)

const AppName = "BarcodeInventorySystem"

// Store persists whole JSON collections under a single data directory.
// Writes are crash-safe: the collection is written to a temp file first and
// atomically renamed over the target, so a failed write leaves the previous
// version intact.
//
// Store implements sync.Locker. Mutating operations hold the lock across
// their full load-mutate-save cycle, including cycles spanning more than one
// collection; there is no cross-collection atomicity beyond that.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares the data directory and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir resolves the platform data directory used when DATA_DIR is unset.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, AppName, "app-data"), nil
}

// Dir returns the backing data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a collection into v, which must be a non-nil pointer to a map
// or slice. A collection that is absent, empty, unreadable, or of the wrong
// shape degrades to the type-appropriate empty default instead of failing;
// first access materializes the backing file with that default.
func (s *Store) Load(name string, v any) error {
	path := s.path(name)

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s.materialize(name, v)
	}
	if err != nil {
		logger.Logger.Warn().Err(err).Str("collection", name).Msg("Unreadable collection, using empty default")
		setEmptyDefault(v)
		return nil
	}
	if len(raw) == 0 {
		setEmptyDefault(v)
		return nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		logger.Logger.Warn().Err(err).Str("collection", name).Msg("Corrupted collection, resetting to empty default")
		setEmptyDefault(v)
		return nil
	}
	return nil
}

// Save overwrites a whole collection atomically.
func (s *Store) Save(name string, v any) error {
	path := s.path(name)
	tempPath := path + ".tmp"

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		if rmErr := os.Remove(tempPath); rmErr != nil {
			logger.Logger.Error().Err(rmErr).Str("path", tempPath).Msg("Failed to delete temp file")
		}
		return fmt.Errorf("failed to replace collection %s: %w", name, err)
	}
	return nil
}

// materialize writes the empty default for a collection that does not exist yet.
func (s *Store) materialize(name string, v any) error {
	setEmptyDefault(v)
	if err := s.Save(name, v); err != nil {
		return err
	}
	logger.Logger.Info().Str("collection", name).Msg("Created initial data file")
	return nil
}

// setEmptyDefault resets v (pointer to map or slice) to its empty value, so a
// corrupted transaction log becomes [] and a keyed collection becomes {}.
func setEmptyDefault(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Map:
		elem.Set(reflect.MakeMap(elem.Type()))
	case reflect.Slice:
		elem.Set(reflect.MakeSlice(elem.Type(), 0, 0))
	default:
		elem.Set(reflect.Zero(elem.Type()))
	}
}
