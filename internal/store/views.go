package store

import (
	"context"
	"database/sql"
	"sort"

	"github.com/edrosario/stark/internal/model"
)

// Views are recomputed from a fresh GetAll snapshot on every call. Nothing
// here caches, so a view requested after a mutation always reflects it.

// ItemsView returns all inventory items.
func ItemsView(ctx context.Context, db *sql.DB) ([]*model.Item, error) {
	all, err := GetAll(ctx, db)
	if err != nil {
		return nil, err
	}

	var items []*model.Item
	for _, rec := range all {
		if item, ok := rec.(*model.Item); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// SalesView returns all sales, most recent first.
func SalesView(ctx context.Context, db *sql.DB) ([]*model.Sale, error) {
	all, err := GetAll(ctx, db)
	if err != nil {
		return nil, err
	}

	var sales []*model.Sale
	for _, rec := range all {
		if sale, ok := rec.(*model.Sale); ok {
			sales = append(sales, sale)
		}
	}
	// RFC 3339 timestamps order lexicographically.
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Timestamp > sales[j].Timestamp
	})
	return sales, nil
}

// AppointmentsView returns all appointments, earliest date first. Dates are
// zero-padded YYYY-MM-DD strings, so lexicographic compare is chronological.
func AppointmentsView(ctx context.Context, db *sql.DB) ([]*model.Appointment, error) {
	all, err := GetAll(ctx, db)
	if err != nil {
		return nil, err
	}

	var appts []*model.Appointment
	for _, rec := range all {
		if a, ok := rec.(*model.Appointment); ok {
			appts = append(appts, a)
		}
	}
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].Date < appts[j].Date
	})
	return appts, nil
}

// ServicesView returns all services of one category, unordered.
func ServicesView(ctx context.Context, db *sql.DB, category string) ([]*model.Service, error) {
	all, err := GetAll(ctx, db)
	if err != nil {
		return nil, err
	}

	var services []*model.Service
	for _, rec := range all {
		if s, ok := rec.(*model.Service); ok && s.Category == category {
			services = append(services, s)
		}
	}
	return services, nil
}

// Counts holds the dashboard counters.
type Counts struct {
	Items        int `json:"items"`
	Sales        int `json:"sales"`
	Appointments int `json:"appointments"`
}

// CountRecords tallies items, sales and appointments in one pass.
func CountRecords(ctx context.Context, db *sql.DB) (Counts, error) {
	all, err := GetAll(ctx, db)
	if err != nil {
		return Counts{}, err
	}

	var c Counts
	for _, rec := range all {
		switch rec.RecordKind() {
		case model.KindItem:
			c.Items++
		case model.KindSale:
			c.Sales++
		case model.KindAppointment:
			c.Appointments++
		}
	}
	return c, nil
}
