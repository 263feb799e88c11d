package store

import (
	"context"
	"database/sql"

	"github.com/edrosario/stark/internal/model"
)

// AddItem creates a new inventory item.
func AddItem(ctx context.Context, db *sql.DB, name string, stock int, price float64) (*model.Item, error) {
	if name == "" {
		return nil, model.Validationf("name", "required")
	}
	if stock < 0 {
		return nil, model.Validationf("stock", "must not be negative")
	}
	if price < 0 {
		return nil, model.Validationf("price", "must not be negative")
	}

	item := model.NewItem(name, stock, price)
	if _, err := Put(ctx, db, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns an item by ID, or nil if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	items, err := ItemsView(ctx, db)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}

// DeleteItem deletes an item. Historical sales keep referencing the deleted
// id; sales are immutable facts and are never cascaded.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	return DeleteByID(ctx, db, id)
}
