package store

import (
	"context"
	"errors"
	"testing"

	"github.com/edrosario/stark/internal/db"
	"github.com/edrosario/stark/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddItem(ctx, database, "Shampoo", 10, 250)
	RegisterSale(ctx, database, item.ID, 3)
	AddAppointment(ctx, database, "Luis", "2026-09-05", "14:00")
	AddService(ctx, database, model.CategoryBarber, ServiceInput{Client: "Juan", Service: "corte", Price: 300})
	CreateUser(ctx, database, "admin", "secret")

	exported, err := Export(ctx, database)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	before, _ := GetAll(ctx, database)

	count, err := Import(ctx, database, exported)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if count != len(before) {
		t.Errorf("expected %d records applied, got %d", len(before), count)
	}

	// Set-equality: re-importing the export leaves the record set unchanged.
	after, _ := GetAll(ctx, database)
	if len(after) != len(before) {
		t.Fatalf("expected %d records after round trip, got %d", len(before), len(after))
	}
	ids := map[string]model.Kind{}
	for _, rec := range before {
		ids[rec.RecordID()] = rec.RecordKind()
	}
	for _, rec := range after {
		kind, ok := ids[rec.RecordID()]
		if !ok || kind != rec.RecordKind() {
			t.Errorf("record %s/%s not preserved by round trip", rec.RecordID(), rec.RecordKind())
		}
	}
}

func TestImportIntoEmptyStore(t *testing.T) {
	source := db.NewTestDB(t)
	target := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddItem(ctx, source, "Shampoo", 10, 250)
	RegisterSale(ctx, source, item.ID, 2)

	exported, _ := Export(ctx, source)

	count, err := Import(ctx, target, exported)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 records applied, got %d", count)
	}

	items, _ := ItemsView(ctx, target)
	if len(items) != 1 || items[0].Name != "Shampoo" || items[0].Stock != 8 {
		t.Errorf("unexpected imported items: %+v", items)
	}
}

func TestImportInvalidJSON(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddItem(ctx, database, "Shampoo", 10, 250)

	_, err := Import(ctx, database, []byte("not json"))
	if !errors.Is(err, model.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	all, _ := GetAll(ctx, database)
	if len(all) != 1 {
		t.Errorf("expected store unchanged, got %d records", len(all))
	}
}

func TestImportUnknownKindWritesNothing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	payload := []byte(`[
		{"id": "a", "kind": "item", "name": "Soap", "stock": 1, "price": 50},
		{"id": "b", "kind": "mystery", "field": true}
	]`)

	_, err := Import(ctx, database, payload)
	if !errors.Is(err, model.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	// Atomic: the valid first record must not have been applied either.
	all, _ := GetAll(ctx, database)
	if len(all) != 0 {
		t.Errorf("expected zero writes, got %d records", len(all))
	}
}

func TestImportMissingIDWritesNothing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	payload := []byte(`[{"kind": "item", "name": "Soap", "stock": 1, "price": 50}]`)

	_, err := Import(ctx, database, payload)
	if !errors.Is(err, model.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	all, _ := GetAll(ctx, database)
	if len(all) != 0 {
		t.Errorf("expected zero writes, got %d records", len(all))
	}
}

func TestImportReplacesExistingRecords(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddItem(ctx, database, "Shampoo", 10, 250)

	payload := []byte(`[{"id": "` + item.ID + `", "kind": "item", "name": "Shampoo", "stock": 99, "price": 250}]`)
	if _, err := Import(ctx, database, payload); err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got.Stock != 99 {
		t.Errorf("expected imported record to replace stock, got %d", got.Stock)
	}
}
