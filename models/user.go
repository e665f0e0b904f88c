package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer.
	UserID int64 `json:"id"`

	// Email is the unique address the user registered with.
	// It is the login identifier for authentication.
	Email string `json:"email"`

	// Username is the unique public display name of the user.
	Username string `json:"username"`

	// Password carries the plaintext password on inbound requests and the
	// bcrypt digest at the persistence layer. It is cleared before any
	// user record leaves the server (see Sanitized).
	Password string `json:"password,omitempty"`

	// Avatar is the profile picture path assigned at signup.
	// Immutable after creation.
	Avatar string `json:"image"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy of the user safe to embed in API responses:
// the password digest is cleared, everything else is kept as-is.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
