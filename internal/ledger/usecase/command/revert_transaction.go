package command

import (
	"fmt"
	"sync"

	"github.com/tair/barcode-inventory/internal/ledger/domain"
	"github.com/tair/barcode-inventory/pkg/apperr"
)

// RevertTransactionCommand represents the command to delete a transaction
// record and undo its stock effect.
type RevertTransactionCommand struct {
	ID string
}

// RevertTransactionHandler handles the revert transaction command
type RevertTransactionHandler struct {
	inventory    domain.InventoryRepository
	transactions domain.TransactionRepository
	lock         sync.Locker
}

// NewRevertTransactionHandler creates a new revert transaction handler
func NewRevertTransactionHandler(
	inventory domain.InventoryRepository,
	transactions domain.TransactionRepository,
	lock sync.Locker,
) *RevertTransactionHandler {
	return &RevertTransactionHandler{inventory: inventory, transactions: transactions, lock: lock}
}

// Handle executes the revert transaction command. The record's signed delta
// already encodes the exact stock change that was applied, so subtracting it
// reverses any of the three modes. Cost is not restored; a revert only undoes
// the stock portion of the record's effect.
func (h *RevertTransactionHandler) Handle(cmd RevertTransactionCommand) error {
	if cmd.ID == "" {
		return apperr.InvalidInput(apperr.KeyInvalidData)
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	records, err := h.transactions.All()
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	inventory, err := h.inventory.All()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	index := -1
	for i, r := range records {
		if r.ID == cmd.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return apperr.NotFound(apperr.KeyDeleteTransaction)
	}
	tx := records[index]

	cells, ok := inventory[tx.Barcode]
	if !ok {
		return apperr.ItemNotFoundInInventory()
	}
	cell, ok := cells[tx.Size]
	if !ok {
		return apperr.ItemNotFoundInInventory()
	}

	newStock := cell.Stock - tx.Amount
	if newStock < 0 {
		// Later transactions already consumed the stock this one added;
		// reverting now would corrupt the cell.
		return apperr.InsufficientStock(tx.ItemName, cell.Stock)
	}

	cells[tx.Size] = domain.Cell{Stock: newStock, Cost: cell.Cost}
	records = append(records[:index], records[index+1:]...)

	if err := h.inventory.SaveAll(inventory); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	if err := h.transactions.SaveAll(records); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
