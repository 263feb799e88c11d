package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/edrosario/stark/internal/model"
	"github.com/edrosario/stark/internal/store"
)

// ServicesHandler handles the per-category service endpoints.
type ServicesHandler struct {
	DB *sql.DB
}

// List handles GET /api/services/{category}.
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if !model.ValidCategory(category) {
		jsonError(w, http.StatusBadRequest, "unknown service category")
		return
	}

	services, err := store.ServicesView(r.Context(), h.DB, category)
	if err != nil {
		domainError(w, err)
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	jsonResponse(w, http.StatusOK, services)
}

// Create handles POST /api/services/{category}.
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	var in store.ServiceInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := store.AddService(r.Context(), h.DB, category, in)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("service added", "id", svc.ID, "category", svc.Category)
	jsonResponse(w, http.StatusCreated, svc)
}
