package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	catalogcmd "github.com/tair/barcode-inventory/internal/catalog/usecase/command"
	"github.com/tair/barcode-inventory/internal/facade"
	"github.com/tair/barcode-inventory/pkg/logger"
)

// CatalogHandler handles HTTP requests for products and categories
type CatalogHandler struct {
	facade *facade.Facade
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(f *facade.Facade) *CatalogHandler {
	return &CatalogHandler{facade: f}
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.facade.Categories()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// CreateCategory handles POST /api/category
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryName string `json:"categoryName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.facade.CreateCategory(req.CategoryName)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Data: category})
}

// RenameCategory handles PUT /api/category/{id}
func (h *CatalogHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewName string `json:"newName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.facade.RenameCategory(mux.Vars(r)["id"], req.NewName)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: category})
}

// DeleteCategory handles DELETE /api/category/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.facade.DeleteCategory(mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category deleted and products reassigned.",
	})
}

// CreateProduct handles POST /api/product
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductName   string          `json:"productName"`
		PrincipalCode string          `json:"principalCode"`
		TypeCode      string          `json:"typeCode"`
		CategoryID    string          `json:"category_id"`
		DefaultCost   decimal.Decimal `json:"default_cost"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.facade.CreateProduct(catalogcmd.CreateProductCommand{
		Name:          req.ProductName,
		PrincipalCode: req.PrincipalCode,
		TypeCode:      req.TypeCode,
		CategoryID:    req.CategoryID,
		DefaultCost:   req.DefaultCost,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	logger.Logger.Info().
		Str("barcode", result.Barcode).
		Str("name", result.Name).
		Msg("Product created")
	respondJSON(w, http.StatusCreated, Response{Success: true, Data: result})
}

// GetProduct handles GET /api/product/{barcode}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.facade.Product(mux.Vars(r)["barcode"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// UpdateProduct handles PUT /api/product/{barcode}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductName string                     `json:"productName"`
		DefaultCost decimal.Decimal            `json:"default_cost"`
		SizeCosts   map[string]decimal.Decimal `json:"sizeCosts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.facade.UpdateProduct(catalogcmd.UpdateProductCommand{
		Barcode:     mux.Vars(r)["barcode"],
		Name:        req.ProductName,
		DefaultCost: req.DefaultCost,
		SizeCosts:   req.SizeCosts,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/product/{barcode}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.facade.DeleteProduct(mux.Vars(r)["barcode"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
	router.HandleFunc("/api/category", h.CreateCategory).Methods("POST")
	router.HandleFunc("/api/category/{id}", h.RenameCategory).Methods("PUT")
	router.HandleFunc("/api/category/{id}", h.DeleteCategory).Methods("DELETE")
	router.HandleFunc("/api/product", h.CreateProduct).Methods("POST")
	router.HandleFunc("/api/product/{barcode}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/product/{barcode}", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/api/product/{barcode}", h.DeleteProduct).Methods("DELETE")
}
