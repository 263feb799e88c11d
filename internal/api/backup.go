package api

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"

	"github.com/edrosario/stark/internal/store"
)

// BackupHandler handles export and import of the full record set.
type BackupHandler struct {
	DB *sql.DB
}

// maxImportSize bounds import payloads (the whole collection fits easily).
const maxImportSize = 32 << 20

// Export handles GET /api/export: the whole collection as one JSON array.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := store.Export(r.Context(), h.DB)
	if err != nil {
		domainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="stark-export.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import handles POST /api/import. The batch applies atomically; a bad
// payload writes nothing.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	r.Body.Close()
	if err != nil {
		jsonError(w, http.StatusBadRequest, "reading request body")
		return
	}

	count, err := store.Import(r.Context(), h.DB, payload)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("import applied", "records", count)
	jsonResponse(w, http.StatusOK, map[string]any{
		"imported": count,
		"say":      "Importación completada",
	})
}
