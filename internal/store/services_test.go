package store

import (
	"context"
	"testing"

	"github.com/edrosario/stark/internal/db"
	"github.com/edrosario/stark/internal/model"
)

func TestAddBarberService(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	svc, err := AddService(ctx, database, model.CategoryBarber,
		ServiceInput{Client: "Juan", Service: "corte", Price: 300})
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if svc.Client != "Juan" || svc.Service != "corte" || svc.Price != 300 {
		t.Errorf("unexpected service: %+v", svc)
	}
	if svc.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestAddPoolService(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	svc, err := AddService(ctx, database, model.CategoryPool,
		ServiceInput{User: "Rey", Time: "18:00"})
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if svc.User != "Rey" || svc.Time != "18:00" {
		t.Errorf("unexpected service: %+v", svc)
	}
}

func TestAddCarService(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	svc, err := AddService(ctx, database, model.CategoryCar,
		ServiceInput{Vehicle: "Honda Civic", Service: "lavado completo", Price: 450})
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if svc.Vehicle != "Honda Civic" {
		t.Errorf("unexpected service: %+v", svc)
	}
}

func TestAddServiceValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tests := []struct {
		category string
		in       ServiceInput
	}{
		{"sauna", ServiceInput{Client: "x"}},
		{model.CategoryBarber, ServiceInput{Service: "corte"}},
		{model.CategoryPool, ServiceInput{Time: "18:00"}},
		{model.CategoryPool, ServiceInput{User: "Rey"}},
		{model.CategoryCar, ServiceInput{Service: "lavado"}},
	}
	for _, tc := range tests {
		if _, err := AddService(ctx, database, tc.category, tc.in); !model.IsValidation(err) {
			t.Errorf("AddService(%s, %+v): expected validation error, got %v",
				tc.category, tc.in, err)
		}
	}

	all, _ := GetAll(ctx, database)
	if len(all) != 0 {
		t.Errorf("expected no writes from rejected adds, got %d records", len(all))
	}
}
