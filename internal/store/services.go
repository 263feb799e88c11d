package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/edrosario/stark/internal/model"
)

// ServiceInput holds the category-specific fields of a new service.
type ServiceInput struct {
	Client  string  `json:"client"`
	User    string  `json:"user"`
	Vehicle string  `json:"vehicle"`
	Service string  `json:"service"`
	Time    string  `json:"time"`
	Price   float64 `json:"price"`
}

// AddService records a rendered service in the given category. The required
// field depends on the category: barber wants a client, pool a user and a
// time, car a vehicle.
func AddService(ctx context.Context, db *sql.DB, category string, in ServiceInput) (*model.Service, error) {
	if !model.ValidCategory(category) {
		return nil, model.Validationf("category", "unknown category %q", category)
	}

	svc := &model.Service{
		ID:        model.NewID(),
		Kind:      model.KindService,
		Category:  category,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	switch category {
	case model.CategoryBarber:
		if in.Client == "" {
			return nil, model.Validationf("client", "required")
		}
		svc.Client = in.Client
		svc.Service = in.Service
		svc.Price = in.Price
	case model.CategoryPool:
		if in.User == "" {
			return nil, model.Validationf("user", "required")
		}
		if in.Time == "" {
			return nil, model.Validationf("time", "required")
		}
		svc.User = in.User
		svc.Time = in.Time
	case model.CategoryCar:
		if in.Vehicle == "" {
			return nil, model.Validationf("vehicle", "required")
		}
		svc.Vehicle = in.Vehicle
		svc.Service = in.Service
		svc.Price = in.Price
	}

	if _, err := Put(ctx, db, svc); err != nil {
		return nil, err
	}
	return svc, nil
}
