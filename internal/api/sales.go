package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/edrosario/stark/internal/model"
	"github.com/edrosario/stark/internal/store"
)

// SalesHandler handles sale endpoints.
type SalesHandler struct {
	DB *sql.DB
}

type createSaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// List handles GET /api/sales. Most recent sale first.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := store.SalesView(r.Context(), h.DB)
	if err != nil {
		domainError(w, err)
		return
	}
	if sales == nil {
		sales = []*model.Sale{}
	}
	jsonResponse(w, http.StatusOK, sales)
}

// Create handles POST /api/sales.
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" {
		jsonError(w, http.StatusBadRequest, "product_id required")
		return
	}

	sale, err := store.RegisterSale(r.Context(), h.DB, req.ProductID, req.Quantity)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("sale registered", "id", sale.ID, "product", sale.ProductID,
		"quantity", sale.Quantity, "total", sale.Total)
	jsonResponse(w, http.StatusCreated, sale)
}
