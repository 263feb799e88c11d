package store

import (
	"context"
	"database/sql"

	"github.com/edrosario/stark/internal/model"
)

// CreateUser creates a credential record.
func CreateUser(ctx context.Context, db *sql.DB, username, password string) (*model.User, error) {
	if username == "" {
		return nil, model.Validationf("username", "required")
	}
	if password == "" {
		return nil, model.Validationf("password", "required")
	}

	existing, err := GetUserByUsername(ctx, db, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.Validationf("username", "already taken")
	}

	user := model.NewUser(username, password)
	if _, err := Put(ctx, db, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByUsername returns the user with that username, or nil.
func GetUserByUsername(ctx context.Context, db *sql.DB, username string) (*model.User, error) {
	users, err := usersView(ctx, db)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// Authenticate checks credentials by plaintext equality against the stored
// user record and returns the matching user, or nil when either the
// username or the password does not match. Plaintext comparison is the
// documented weakness of this system.
func Authenticate(ctx context.Context, db *sql.DB, username, password string) (*model.User, error) {
	user, err := GetUserByUsername(ctx, db, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, nil
	}
	return user, nil
}

// BootstrapAdmin creates the admin user on first run. It reports whether a
// user was created; an existing user set leaves the store untouched.
func BootstrapAdmin(ctx context.Context, db *sql.DB, username, password string) (bool, error) {
	users, err := usersView(ctx, db)
	if err != nil {
		return false, err
	}
	if len(users) > 0 {
		return false, nil
	}

	if _, err := CreateUser(ctx, db, username, password); err != nil {
		return false, err
	}
	return true, nil
}

func usersView(ctx context.Context, db *sql.DB) ([]*model.User, error) {
	all, err := GetAll(ctx, db)
	if err != nil {
		return nil, err
	}

	var users []*model.User
	for _, rec := range all {
		if u, ok := rec.(*model.User); ok {
			users = append(users, u)
		}
	}
	return users, nil
}
