package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/edrosario/stark/internal/model"
	"github.com/edrosario/stark/internal/store"
)

// AppointmentsHandler handles appointment endpoints.
type AppointmentsHandler struct {
	DB *sql.DB
}

type createAppointmentRequest struct {
	Client string `json:"client"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// List handles GET /api/appointments. Earliest date first.
func (h *AppointmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	appts, err := store.AppointmentsView(r.Context(), h.DB)
	if err != nil {
		domainError(w, err)
		return
	}
	if appts == nil {
		appts = []*model.Appointment{}
	}
	jsonResponse(w, http.StatusOK, appts)
}

// Create handles POST /api/appointments.
func (h *AppointmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appt, err := store.AddAppointment(r.Context(), h.DB, req.Client, req.Date, req.Time)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("appointment created", "id", appt.ID, "client", appt.Client, "date", appt.Date)
	jsonResponse(w, http.StatusCreated, appt)
}
