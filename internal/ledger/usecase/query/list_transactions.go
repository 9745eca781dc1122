package query

import (
	"fmt"
	"sort"

	"github.com/tair/barcode-inventory/internal/ledger/domain"
)

// ListTransactionsQuery represents the query to read the transaction log.
// Records are stored oldest first; Descending returns the newest first, the
// order displays use.
type ListTransactionsQuery struct {
	Descending bool
}

// ListTransactionsHandler handles list transactions query
type ListTransactionsHandler struct {
	transactions domain.TransactionRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(transactions domain.TransactionRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{transactions: transactions}
}

// Handle executes the list transactions query
func (h *ListTransactionsHandler) Handle(q ListTransactionsQuery) ([]domain.Record, error) {
	records, err := h.transactions.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if q.Descending {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Timestamp.After(records[j].Timestamp)
		})
	}
	return records, nil
}
