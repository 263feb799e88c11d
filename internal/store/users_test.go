package store

import (
	"context"
	"testing"

	"github.com/edrosario/stark/internal/db"
	"github.com/edrosario/stark/internal/model"
)

func TestCreateAndAuthenticateUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "ana", "secret"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	user, err := Authenticate(ctx, database, "ana", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user == nil {
		t.Fatal("expected a match for correct credentials")
	}
	if user.Username != "ana" {
		t.Errorf("expected username 'ana', got %q", user.Username)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "ana", "secret")

	for _, tc := range []struct{ username, password string }{
		{"ana", "wrong"},
		{"nobody", "secret"},
		{"ana", ""},
	} {
		user, err := Authenticate(ctx, database, tc.username, tc.password)
		if err != nil {
			t.Fatalf("Authenticate(%q): %v", tc.username, err)
		}
		if user != nil {
			t.Errorf("expected no match for %q/%q", tc.username, tc.password)
		}
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "ana", "secret")

	if _, err := CreateUser(ctx, database, "ana", "other"); !model.IsValidation(err) {
		t.Errorf("expected validation error for duplicate username, got %v", err)
	}
}

func TestBootstrapAdmin(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, err := BootstrapAdmin(ctx, database, "admin", "first-password")
	if err != nil {
		t.Fatalf("BootstrapAdmin: %v", err)
	}
	if !created {
		t.Fatal("expected admin to be created on empty store")
	}

	// Second call must not touch the existing user set.
	created, err = BootstrapAdmin(ctx, database, "admin", "second-password")
	if err != nil {
		t.Fatalf("BootstrapAdmin: %v", err)
	}
	if created {
		t.Error("expected no-op when a user already exists")
	}

	user, _ := Authenticate(ctx, database, "admin", "first-password")
	if user == nil {
		t.Error("expected the original password to still work")
	}
}
