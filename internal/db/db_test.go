package db

import (
	"path/filepath"
	"testing"
)

func TestOpenEnsuresSchema(t *testing.T) {
	database := NewTestDB(t)

	var count int
	err := database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'records'`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("querying schema: %v", err)
	}
	if count != 1 {
		t.Errorf("expected records table to exist, got %d", count)
	}
}

func TestReopenIsSafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite3")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := first.Exec(
		`INSERT INTO records (id, kind, data) VALUES ('a', 'item', '{}')`,
	); err != nil {
		t.Fatalf("inserting record: %v", err)
	}
	first.Close()

	// Reopening must not recreate or duplicate the table.
	second, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	var count int
	if err := second.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		t.Fatalf("counting records: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 record after reopen, got %d", count)
	}
}

func TestOpenUnavailableMedium(t *testing.T) {
	// A directory is not a valid database file.
	db, err := Open(t.TempDir())
	if err == nil {
		db.Close()
		t.Fatal("expected error when the medium cannot be opened")
	}
}
