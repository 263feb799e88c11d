package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/edrosario/stark/internal/model"
)

// Export serializes the full record set as a JSON array. Every field of
// every record appears verbatim, including the kind and category tags, so
// the output feeds back into Import unchanged.
func Export(ctx context.Context, db *sql.DB) ([]byte, error) {
	all, err := GetAll(ctx, db)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []model.Record{}
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing export: %w", err)
	}
	return data, nil
}

// Import parses a JSON array of records and applies every one of them in a
// single transaction. A payload that cannot be parsed into known record
// variants fails with ErrInvalidFormat and performs zero writes; a medium
// failure partway through rolls the whole batch back. Returns the number
// of records applied.
func Import(ctx context.Context, db *sql.DB, payload []byte) (int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidFormat, err)
	}

	// Decode everything up front: a single bad record rejects the payload
	// before any write is attempted.
	records := make([]model.Record, 0, len(raw))
	for i, doc := range raw {
		rec, err := model.DecodeAny(doc)
		if err != nil {
			return 0, fmt.Errorf("%w: record %d: %v", model.ErrInvalidFormat, i, err)
		}
		records = append(records, rec)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		if err := putRecord(ctx, tx, rec); err != nil {
			return 0, fmt.Errorf("importing record %s: %w", rec.RecordID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return len(records), nil
}
