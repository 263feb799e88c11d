package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/edrosario/stark/internal/model"
)

// GetAll returns every persisted record. Order is implementation-defined;
// sorting is a view concern.
func GetAll(ctx context.Context, db *sql.DB) ([]model.Record, error) {
	rows, err := db.QueryContext(ctx, `SELECT kind, data FROM records`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var kind model.Kind
		var data []byte
		if err := rows.Scan(&kind, &data); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec, err := model.Decode(kind, data)
		if err != nil {
			return nil, fmt.Errorf("reading stored record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Put inserts a new record or fully replaces an existing one sharing the
// same identifier, and returns the identifier. Putting the same record
// twice yields the same stored state. A failed write leaves the stored
// state untouched.
func Put(ctx context.Context, db *sql.DB, rec model.Record) (string, error) {
	if err := putRecord(ctx, db, rec); err != nil {
		return "", err
	}
	return rec.RecordID(), nil
}

// DeleteByID removes the record with that identifier. An absent identifier
// is a no-op, not an error.
func DeleteByID(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	return nil
}

// execer covers *sql.DB and *sql.Tx so single-record writes can run both
// standalone and inside a multi-record transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putRecord(ctx context.Context, ex execer, rec model.Record) error {
	data, err := model.Encode(rec)
	if err != nil {
		return err
	}
	_, err = ex.ExecContext(ctx,
		`INSERT INTO records (id, kind, data) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET kind = excluded.kind, data = excluded.data`,
		rec.RecordID(), rec.RecordKind(), data,
	)
	if err != nil {
		return fmt.Errorf("storing record %s: %w", rec.RecordID(), err)
	}
	return nil
}
