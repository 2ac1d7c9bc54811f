package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike, so callers cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken is returned by Logout when no token was supplied.
	ErrMissingToken = errors.New("no token provided")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid covers every token verification failure:
	// bad signature, wrong issuer, malformed string, or expiry.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
