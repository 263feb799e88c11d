package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edrosario/stark/internal/model"
)

// RegisterSale sells quantity units of an item: it decrements the item's
// stock and appends a sale record in a single transaction, so the pair
// commits or rolls back together. The total captures the item's price at
// the moment of the sale.
func RegisterSale(ctx context.Context, db *sql.DB, productID string, quantity int) (*model.Sale, error) {
	if quantity <= 0 {
		return nil, model.Validationf("quantity", "must be positive")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var data []byte
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM records WHERE id = ? AND kind = ?`,
		productID, model.KindItem,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", productID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading item: %w", err)
	}

	rec, err := model.Decode(model.KindItem, data)
	if err != nil {
		return nil, fmt.Errorf("loading item: %w", err)
	}
	item := rec.(*model.Item)

	if item.Stock < quantity {
		return nil, fmt.Errorf("item %s has %d in stock, need %d: %w",
			item.Name, item.Stock, quantity, model.ErrInsufficientStock)
	}

	// Price is captured before the decrement is visible to anyone.
	sale := model.NewSale(item.ID, quantity, item.Price*float64(quantity),
		time.Now().UTC().Format(time.RFC3339))

	item.Stock -= quantity
	if err := putRecord(ctx, tx, item); err != nil {
		return nil, fmt.Errorf("updating stock: %w", err)
	}
	if err := putRecord(ctx, tx, sale); err != nil {
		return nil, fmt.Errorf("recording sale: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}
	return sale, nil
}
