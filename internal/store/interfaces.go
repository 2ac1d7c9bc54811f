// Package store implements the persistence layer of the application:
// a PostgreSQL-backed repository for users and transactions, and the
// process-wide in-memory revocation set for logged-out session tokens.
package store

import (
	"context"
	"time"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// UserRepository persists and resolves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail resolves an account by its unique email.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID resolves an account by its id.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// TransactionRepository persists and lists transaction records.
type TransactionRepository interface {
	// CreateTransaction inserts a new transaction record and returns it with
	// server-assigned fields populated.
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)

	// FindTransactionsByUser returns every transaction owned by the given
	// user, oldest first. The result is never nil.
	FindTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error)
}

// TokenBlacklist is the process-wide set of revoked session tokens.
// Implementations must support concurrent insert and membership checks from
// arbitrarily many simultaneous requests.
type TokenBlacklist interface {
	// Add marks a token string as revoked. Idempotent; adding a malformed
	// string is harmless.
	Add(token string)

	// Contains reports whether the token string has been revoked.
	Contains(token string) bool

	// DeleteExpired drops entries whose natural token expiry has passed and
	// returns the number of entries removed. Entries with unknown expiry are
	// kept.
	DeleteExpired(now time.Time) int
}
