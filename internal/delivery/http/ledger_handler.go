package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/facade"
	"github.com/tair/barcode-inventory/internal/ledger/domain"
	ledgercmd "github.com/tair/barcode-inventory/internal/ledger/usecase/command"
	"github.com/tair/barcode-inventory/pkg/storage"
)

var (
	transactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_transactions_total",
			Help: "Total number of processed transactions by mode and status",
		},
		[]string{"mode", "status"},
	)
	transactionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_transaction_duration_seconds",
			Help:    "Duration of transaction processing in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
	inventoryValue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_total_value",
			Help: "Total inventory value (stock x per-unit cost) at last valuation",
		},
	)
)

func init() {
	prometheus.MustRegister(transactionsTotal)
	prometheus.MustRegister(transactionLatency)
	prometheus.MustRegister(inventoryValue)
}

// LedgerHandler handles HTTP requests for transactions and reports
type LedgerHandler struct {
	facade *facade.Facade
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(f *facade.Facade) *LedgerHandler {
	return &LedgerHandler{facade: f}
}

// LoadData handles GET /api/data
func (h *LedgerHandler) LoadData(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.facade.LoadData()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// ProcessTransaction handles POST /api/transaction
func (h *LedgerHandler) ProcessTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LookupValue     string          `json:"lookupValue"`
		Amount          int             `json:"amount"`
		Mode            string          `json:"mode"`
		Size            string          `json:"size"`
		TotalSalesPrice decimal.Decimal `json:"totalSalesPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	start := time.Now()
	result, err := h.facade.ProcessTransaction(ledgercmd.ApplyTransactionCommand{
		Barcode:   req.LookupValue,
		Size:      req.Size,
		Mode:      domain.Mode(req.Mode),
		Amount:    req.Amount,
		SalePrice: req.TotalSalesPrice,
	})
	transactionLatency.WithLabelValues(req.Mode).Observe(time.Since(start).Seconds())

	if err != nil {
		transactionsTotal.WithLabelValues(req.Mode, "rejected").Inc()
		respondError(w, err)
		return
	}
	transactionsTotal.WithLabelValues(req.Mode, "accepted").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: result.Message,
		Data:    result,
	})
}

// DeleteTransaction handles DELETE /api/transaction/{id}
func (h *LedgerHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.facade.DeleteTransaction(mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Transaction deleted and stock reverted.",
	})
}

// ListTransactions handles GET /api/transactions
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	descending := r.URL.Query().Get("order") != "asc"
	records, err := h.facade.Transactions(descending)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: records})
}

// ClearLog handles DELETE /api/log
func (h *LedgerHandler) ClearLog(w http.ResponseWriter, r *http.Request) {
	if err := h.facade.ClearLog(); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Transaction log cleared"})
}

// Valuation handles GET /api/reports/valuation
func (h *LedgerHandler) Valuation(w http.ResponseWriter, r *http.Request) {
	report, err := h.facade.Valuation()
	if err != nil {
		respondError(w, err)
		return
	}
	inventoryValue.Set(report.TotalValue.InexactFloat64())
	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/data", h.LoadData).Methods("GET")
	router.HandleFunc("/api/transaction", h.ProcessTransaction).Methods("POST")
	router.HandleFunc("/api/transaction/{id}", h.DeleteTransaction).Methods("DELETE")
	router.HandleFunc("/api/transactions", h.ListTransactions).Methods("GET")
	router.HandleFunc("/api/log", h.ClearLog).Methods("DELETE")
	router.HandleFunc("/api/reports/valuation", h.Valuation).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *LedgerHandler) RegisterHealthCheck(router *mux.Router, store *storage.Store) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		var probe []domain.Record
		if err := store.Load(storage.CollectionTransactions, &probe); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Data store unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}
