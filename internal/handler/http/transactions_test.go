package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/utils"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authedRequest attaches the authenticated identity the middleware would have
// stored.
func authedRequest(method, target, body string) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(request.Context(), utils.UserIDCtxKey, "user-1")
	ctx = context.WithValue(ctx, utils.UserEmailCtxKey, "u@example.com")
	return request.WithContext(ctx)
}

func TestHandler_ListTransactions(t *testing.T) {
	transactions := &mockTransactionService{
		listByUserFunc: func(_ context.Context, userID string) ([]models.Transaction, error) {
			return []models.Transaction{
				{ID: "id-1", City: "Bogota", Coordinates: "-74.0817,4.6097", Date: time.Now(), UserID: userID},
			}, nil
		},
	}
	h := newTestHandler(&mockAuthService{}, transactions)

	recorder := httptest.NewRecorder()
	h.listTransactions(recorder, authedRequest(http.MethodGet, "/transactions", ""))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Bogota", body[0]["city"])

	// the owning user id is not part of the response shape
	assert.NotContains(t, body[0], "user_id")
}

func TestHandler_ListTransactions_EmptyHistoryIsJSONArray(t *testing.T) {
	transactions := &mockTransactionService{
		listByUserFunc: func(_ context.Context, _ string) ([]models.Transaction, error) {
			return []models.Transaction{}, nil
		},
	}
	h := newTestHandler(&mockAuthService{}, transactions)

	recorder := httptest.NewRecorder()
	h.listTransactions(recorder, authedRequest(http.MethodGet, "/transactions", ""))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestHandler_ListTransactions_NoIdentityInContext(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockTransactionService{})

	recorder := httptest.NewRecorder()
	h.listTransactions(recorder, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_ListTransactions_ServiceError(t *testing.T) {
	transactions := &mockTransactionService{
		listByUserFunc: func(_ context.Context, _ string) ([]models.Transaction, error) {
			return nil, errors.New("query failed")
		},
	}
	h := newTestHandler(&mockAuthService{}, transactions)

	recorder := httptest.NewRecorder()
	h.listTransactions(recorder, authedRequest(http.MethodGet, "/transactions", ""))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHandler_SearchTransactions(t *testing.T) {
	transactions := &mockTransactionService{
		searchFunc: func(_ context.Context, userID string, search models.TransactionSearch) (models.Transaction, json.RawMessage, error) {
			return models.Transaction{
				ID:          "id-1",
				City:        search.City,
				Coordinates: "-74.0817,4.6097",
				Date:        time.Now(),
				UserID:      userID,
			}, json.RawMessage(`{"features":[]}`), nil
		},
	}
	h := newTestHandler(&mockAuthService{}, transactions)

	recorder := httptest.NewRecorder()
	h.searchTransactions(recorder, authedRequest(http.MethodPost, "/transactions/search", `{"city":"Bogota"}`))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var body models.TransactionSearchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Bogota", body.Transaction.City)
	assert.Equal(t, "-74.0817,4.6097", body.Transaction.Coordinates)
	assert.JSONEq(t, `{"features":[]}`, string(body.APIResult))
}

func TestHandler_SearchTransactions_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		search     func(ctx context.Context, userID string, search models.TransactionSearch) (models.Transaction, json.RawMessage, error)
		wantStatus int
	}{
		{
			name:       "invalid JSON body",
			body:       `{"city":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "external API failure",
			body: `{"city":"Bogota"}`,
			search: func(_ context.Context, _ string, _ models.TransactionSearch) (models.Transaction, json.RawMessage, error) {
				return models.Transaction{}, nil, errors.New("upstream unavailable")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{}, &mockTransactionService{searchFunc: tt.search})

			recorder := httptest.NewRecorder()
			h.searchTransactions(recorder, authedRequest(http.MethodPost, "/transactions/search", tt.body))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
