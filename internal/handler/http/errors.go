package http

import "errors"

// Sentinel errors used by the authorization middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrNoTokenInRequest is returned when a protected route is hit without
	// a parseable bearer token in the "Authorization" header.
	ErrNoTokenInRequest = errors.New("no bearer token in request")

	// ErrTokenRevoked is returned when the presented token has been logged
	// out; the token may still be cryptographically valid.
	ErrTokenRevoked = errors.New("token has been revoked")
)
