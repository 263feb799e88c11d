package api

import (
	"database/sql"
	"net/http"

	"github.com/edrosario/stark/internal/store"
)

// DashboardHandler serves the dashboard counters.
type DashboardHandler struct {
	DB *sql.DB
}

// Counts handles GET /api/dashboard.
func (h *DashboardHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := store.CountRecords(r.Context(), h.DB)
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, counts)
}
