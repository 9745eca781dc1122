package command

import (
	"fmt"
	"sync"

	"github.com/tair/barcode-inventory/internal/ledger/domain"
)

// ClearLogCommand represents the command to wipe the transaction log
type ClearLogCommand struct{}

// ClearLogHandler handles the clear log command
type ClearLogHandler struct {
	transactions domain.TransactionRepository
	lock         sync.Locker
}

// NewClearLogHandler creates a new clear log handler
func NewClearLogHandler(transactions domain.TransactionRepository, lock sync.Locker) *ClearLogHandler {
	return &ClearLogHandler{transactions: transactions, lock: lock}
}

// Handle executes the clear log command. Stock levels are untouched; only the
// history is dropped.
func (h *ClearLogHandler) Handle(ClearLogCommand) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if err := h.transactions.SaveAll([]domain.Record{}); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}
