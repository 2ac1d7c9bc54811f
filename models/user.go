package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID string `json:"id"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON and must never leave the server process.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the subset of identity fields that is safe to expose
// to clients: the id and the email, never the password hash.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email}
}

// UserSummary is the client-facing projection of a User.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credentials is the request body of the register and login endpoints.
// Password is plaintext in transit only; it is hashed before persistence
// and never stored or logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
