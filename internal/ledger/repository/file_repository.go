package repository

import (
	"github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/storage"
)

// FileInventoryRepository stores the barcode -> size -> cell map as one JSON
// collection.
type FileInventoryRepository struct {
	store *storage.Store
}

func NewFileInventoryRepository(store *storage.Store) *FileInventoryRepository {
	return &FileInventoryRepository{store: store}
}

func (r *FileInventoryRepository) All() (map[string]map[string]domain.Cell, error) {
	inventory := make(map[string]map[string]domain.Cell)
	if err := r.store.Load(storage.CollectionInventory, &inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}

func (r *FileInventoryRepository) SaveAll(inventory map[string]map[string]domain.Cell) error {
	return r.store.Save(storage.CollectionInventory, inventory)
}

// FileTransactionRepository stores the append-only log as one JSON array in
// insertion order, oldest first.
type FileTransactionRepository struct {
	store *storage.Store
}

func NewFileTransactionRepository(store *storage.Store) *FileTransactionRepository {
	return &FileTransactionRepository{store: store}
}

func (r *FileTransactionRepository) All() ([]domain.Record, error) {
	records := make([]domain.Record, 0)
	if err := r.store.Load(storage.CollectionTransactions, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FileTransactionRepository) SaveAll(records []domain.Record) error {
	return r.store.Save(storage.CollectionTransactions, records)
}
