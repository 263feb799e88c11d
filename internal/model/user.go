package model

// User is a credential record. The password is stored and compared in
// plaintext, matching the persisted collection contract; this is a known
// weakness of the system, not an oversight.
type User struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser creates a user record with a fresh identifier.
func NewUser(username, password string) *User {
	return &User{
		ID:       NewID(),
		Kind:     KindUser,
		Username: username,
		Password: password,
	}
}

func (u *User) RecordID() string { return u.ID }

func (u *User) RecordKind() Kind { return KindUser }
