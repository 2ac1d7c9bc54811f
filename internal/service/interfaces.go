package service

import (
	"context"
	"encoding/json"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// AuthService implements credential validation, session token issuance and
// verification, and token revocation.
type AuthService interface {
	// Register creates a new account and logs it in, returning a session
	// token and the identity summary. Fails with store.ErrEmailAlreadyExists
	// when the email is taken.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates credentials and issues a session token.
	// Fails with ErrInvalidCredentials when the account is unknown or the
	// password does not match; the two cases are indistinguishable.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// ValidateCredentials resolves an account by email and verifies the
	// password. Returns the user (password hash stripped) and true on match;
	// the zero user and false on unknown email, wrong password, or any
	// lookup failure, all indistinguishable to the caller.
	ValidateCredentials(ctx context.Context, email, password string) (models.User, bool)

	// Logout revokes the given token string for the remaining lifetime of
	// the process. Fails with ErrMissingToken when token is empty.
	// Revoking the same token twice is not an error.
	Logout(ctx context.Context, token string) error

	// IsTokenRevoked reports whether the token string has been revoked.
	IsTokenRevoked(token string) bool

	// ParseToken verifies a raw token string (signature, issuer, expiry) and
	// returns the decoded token. Fails with ErrTokenIsExpiredOrInvalid on
	// any validation failure. Revocation is NOT checked here; callers that
	// gate requests must consult IsTokenRevoked first.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TransactionService implements the places lookup orchestration and
// transaction listing.
type TransactionService interface {
	// Search resolves the search location (city geocoding with a "0,0"
	// fallback, or raw coordinates), runs the points-of-interest lookup,
	// persists a transaction record, and returns it together with the raw
	// payload of the last external call (nil when no call was made).
	Search(ctx context.Context, userID string, search models.TransactionSearch) (models.Transaction, json.RawMessage, error)

	// ListByUser returns all transactions of a user, oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
}
