package http

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/service"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// mockAuthService implements service.AuthService with pluggable behavior per
// test.
type mockAuthService struct {
	registerFunc            func(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	loginFunc               func(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	validateCredentialsFunc func(ctx context.Context, email, password string) (models.User, bool)
	logoutFunc              func(ctx context.Context, token string) error
	isTokenRevokedFunc      func(token string) bool
	parseTokenFunc          func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	if m.registerFunc == nil {
		return models.AuthResponse{}, errors.New("Register not configured")
	}
	return m.registerFunc(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	if m.loginFunc == nil {
		return models.AuthResponse{}, errors.New("Login not configured")
	}
	return m.loginFunc(ctx, credentials)
}

func (m *mockAuthService) ValidateCredentials(ctx context.Context, email, password string) (models.User, bool) {
	if m.validateCredentialsFunc == nil {
		return models.User{}, false
	}
	return m.validateCredentialsFunc(ctx, email, password)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc == nil {
		return errors.New("Logout not configured")
	}
	return m.logoutFunc(ctx, token)
}

func (m *mockAuthService) IsTokenRevoked(token string) bool {
	if m.isTokenRevokedFunc == nil {
		return false
	}
	return m.isTokenRevokedFunc(token)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFunc == nil {
		return models.Token{}, errors.New("ParseToken not configured")
	}
	return m.parseTokenFunc(ctx, tokenString)
}

// mockTransactionService implements service.TransactionService.
type mockTransactionService struct {
	searchFunc     func(ctx context.Context, userID string, search models.TransactionSearch) (models.Transaction, json.RawMessage, error)
	listByUserFunc func(ctx context.Context, userID string) ([]models.Transaction, error)
}

func (m *mockTransactionService) Search(ctx context.Context, userID string, search models.TransactionSearch) (models.Transaction, json.RawMessage, error) {
	if m.searchFunc == nil {
		return models.Transaction{}, nil, errors.New("Search not configured")
	}
	return m.searchFunc(ctx, userID, search)
}

func (m *mockTransactionService) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	if m.listByUserFunc == nil {
		return nil, errors.New("ListByUser not configured")
	}
	return m.listByUserFunc(ctx, userID)
}

// newTestHandler builds a Handler over the given service mocks with a no-op
// logger.
func newTestHandler(auth service.AuthService, transactions service.TransactionService) *Handler {
	return NewHandler(&service.Services{
		AuthService:        auth,
		TransactionService: transactions,
	}, logger.Nop())
}
