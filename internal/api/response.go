package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/edrosario/stark/internal/model"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// domainError maps a domain operation failure onto an HTTP response.
// Validation problems, missing records, stock rejections and malformed
// imports are recoverable client errors; everything else is a storage
// failure surfaced as 500.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case model.IsValidation(err):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInsufficientStock):
		jsonError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInvalidFormat):
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("storage failure", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
