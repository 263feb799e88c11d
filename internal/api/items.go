package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/edrosario/stark/internal/model"
	"github.com/edrosario/stark/internal/store"
)

// ItemsHandler handles inventory endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ItemsView(r.Context(), h.DB)
	if err != nil {
		domainError(w, err)
		return
	}
	if items == nil {
		items = []*model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.AddItem(r.Context(), h.DB, req.Name, req.Stock, req.Price)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("item added", "id", item.ID, "name", item.Name)
	jsonResponse(w, http.StatusCreated, item)
}

// Delete handles DELETE /api/items/{id}. Sales referencing the item are
// kept as-is.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		domainError(w, err)
		return
	}
	slog.Info("item deleted", "id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"say": "Artículo eliminado"})
}
