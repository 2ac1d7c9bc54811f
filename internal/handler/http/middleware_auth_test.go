package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/service"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/utils"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Gate(t *testing.T) {
	parseValid := func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != "valid-token" {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{
			UserID:      "user-1",
			TokenClaims: models.TokenClaims{Email: "u@example.com"},
		}, nil
	}

	tests := []struct {
		name        string
		authHeader  string
		revoked     map[string]bool
		wantStatus  int
		wantNextRun bool
	}{
		{
			name:       "no Authorization header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "header without token part",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer garbage",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked token",
			authHeader: "Bearer valid-token",
			revoked:    map[string]bool{"valid-token": true},
			wantStatus: http.StatusForbidden,
		},
		{
			name:        "valid token",
			authHeader:  "Bearer valid-token",
			wantStatus:  http.StatusOK,
			wantNextRun: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFunc: parseValid,
				isTokenRevokedFunc: func(token string) bool {
					return tt.revoked[token]
				},
			}
			h := newTestHandler(auth, &mockTransactionService{})

			nextRun := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextRun = true

				userID, ok := utils.GetUserIDFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "user-1", userID)

				email, ok := utils.GetUserEmailFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "u@example.com", email)
			})

			request := httptest.NewRequest(http.MethodGet, "/transactions", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			h.auth(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNextRun, nextRun)
		})
	}
}

// A revoked token must be rejected with 403 before any signature check runs,
// even when the token would no longer verify.
func TestAuthMiddleware_RevocationCheckedBeforeVerification(t *testing.T) {
	parseCalled := false
	auth := &mockAuthService{
		isTokenRevokedFunc: func(_ string) bool { return true },
		parseTokenFunc: func(_ context.Context, _ string) (models.Token, error) {
			parseCalled = true
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(auth, &mockTransactionService{})

	request := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	request.Header.Set("Authorization", "Bearer expired-but-revoked")

	recorder := httptest.NewRecorder()
	h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, parseCalled)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well-formed", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
		{name: "extra spaces keep first token part", header: "Bearer abc extra", want: "abc"},
		{name: "other scheme still yields token part", header: "Basic abc", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBearerToken(tt.header))
		})
	}
}
