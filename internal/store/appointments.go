package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/edrosario/stark/internal/model"
)

// AddAppointment schedules a client visit. All three fields are required;
// the date must be zero-padded YYYY-MM-DD for the appointments view to
// order chronologically.
func AddAppointment(ctx context.Context, db *sql.DB, client, date, timeOfDay string) (*model.Appointment, error) {
	if client == "" {
		return nil, model.Validationf("client", "required")
	}
	if date == "" {
		return nil, model.Validationf("date", "required")
	}
	if timeOfDay == "" {
		return nil, model.Validationf("time", "required")
	}

	appt := model.NewAppointment(client, date, timeOfDay,
		time.Now().UTC().Format(time.RFC3339))
	if _, err := Put(ctx, db, appt); err != nil {
		return nil, err
	}
	return appt, nil
}
