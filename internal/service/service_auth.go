package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/config"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/store"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/utils"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, JWT token
// lifecycle, and token revocation, using a UserRepository for persistence,
// bcrypt for password hashing, and a TokenBlacklist for revocation state.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenBlacklist is the process-wide revocation set shared with the
	// authorization middleware.
	tokenBlacklist store.TokenBlacklist

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and TokenBlacklist, populated with security parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state other than the
// blacklist (which synchronizes internally) is read-only after construction.
func NewAuthService(userRepository store.UserRepository, tokenBlacklist store.TokenBlacklist, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenBlacklist: tokenBlacklist,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both Email and Password are non-empty, hashes the
// password with bcrypt, persists the account, and then performs a regular
// login with the plaintext credentials to produce the session token.
//
// Returns the token and identity summary or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered; no
//     second record is created and no token is issued.
//   - A wrapped storage error if persistence fails.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Email:        credentials.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.Login(ctx, credentials)
}

// Login authenticates an existing user and issues a session token bound to
// the account's id and email.
//
// Returns the token and identity summary or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password does
//     not match.
//   - A wrapped ErrTokenCreationFailed if JWT generation fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	user, ok := a.ValidateCredentials(ctx, credentials.Email, credentials.Password)
	if !ok {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("creation of token failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResponse{
		AccessToken: token.SignedString,
		User:        user.Summary(),
	}, nil
}

// ValidateCredentials looks up the account by email and verifies the
// password against the stored bcrypt hash.
//
// The returned user never carries the password hash. Every failure mode
// (unknown email, wrong password, or a storage error) yields (zero user,
// false) with no distinction visible to the caller: lookup errors are logged
// and swallowed so infrastructure failures cannot be used to probe which
// emails are registered.
func (a *authService) ValidateCredentials(ctx context.Context, email, password string) (models.User, bool) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("credential validation: lookup failed")
		return models.User{}, false
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		log.Debug().Str("email", email).Msg("credential validation: password mismatch")
		return models.User{}, false
	}

	user.PasswordHash = ""
	return user, true
}

// Logout revokes the presented token string unconditionally: no signature
// check is required to revoke, so a malformed string is "revoked" harmlessly.
// Revoking the same token twice succeeds both times.
//
// Returns ErrMissingToken when token is empty.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		log.Error().Msg("logout requested without a token")
		return ErrMissingToken
	}

	a.tokenBlacklist.Add(token)
	log.Info().Msg("token revoked")

	return nil
}

// IsTokenRevoked is a pure membership query against the revocation registry.
func (a *authService) IsTokenRevoked(token string) bool {
	return a.tokenBlacklist.Contains(token)
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
