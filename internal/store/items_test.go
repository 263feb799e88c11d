package store

import (
	"context"
	"testing"

	"github.com/edrosario/stark/internal/db"
	"github.com/edrosario/stark/internal/model"
)

func TestAddItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := AddItem(ctx, database, "Shampoo", 10, 250)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a generated id")
	}
	if item.Kind != model.KindItem {
		t.Errorf("expected kind item, got %q", item.Kind)
	}
}

func TestAddItemValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		stock int
		price float64
	}{
		{"", 1, 100},
		{"Negative Stock", -1, 100},
		{"Negative Price", 1, -5},
	}
	for _, tc := range tests {
		if _, err := AddItem(ctx, database, tc.name, tc.stock, tc.price); !model.IsValidation(err) {
			t.Errorf("AddItem(%q, %d, %v): expected validation error, got %v",
				tc.name, tc.stock, tc.price, err)
		}
	}

	all, _ := GetAll(ctx, database)
	if len(all) != 0 {
		t.Errorf("expected no writes from rejected adds, got %d records", len(all))
	}
}

func TestGetItemAbsent(t *testing.T) {
	database := db.NewTestDB(t)

	item, err := GetItem(context.Background(), database, "missing")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil for absent item, got %+v", item)
	}
}

func TestDeleteItemKeepsSales(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddItem(ctx, database, "Shampoo", 10, 250)
	sale, err := RegisterSale(ctx, database, item.ID, 2)
	if err != nil {
		t.Fatalf("RegisterSale: %v", err)
	}

	if err := DeleteItem(ctx, database, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	// The sale survives with a dangling reference; sales are immutable facts.
	sales, _ := SalesView(ctx, database)
	if len(sales) != 1 {
		t.Fatalf("expected sale to survive item deletion, got %d sales", len(sales))
	}
	if sales[0].ID != sale.ID || sales[0].ProductID != item.ID {
		t.Errorf("expected untouched sale record, got %+v", sales[0])
	}
}
