package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/utils"
)

// auth is the authorization gate applied to every protected route.
//
// Decision order, per request:
//
//  1. Extract the bearer token from the "Authorization" header. An absent or
//     malformed header yields an empty token value, not an error.
//  2. A non-empty token found in the revocation registry is rejected with
//     HTTP 403 Forbidden BEFORE any cryptographic verification. The ordering
//     is load-bearing: a logged-out token must never authorize a request
//     even while its signature still verifies and its expiry has not passed.
//  3. An empty token is rejected with HTTP 401 Unauthorized.
//  4. Anything else is delegated to [service.AuthService.ParseToken]
//     (signature, issuer, expiry); failure means HTTP 401 Unauthorized.
//
// On success the authenticated user's id and email are stored in the request
// context under [utils.UserIDCtxKey] and [utils.UserEmailCtxKey] before
// delegating to the next handler, so downstream handlers never re-parse the
// token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := extractBearerToken(r.Header.Get("Authorization"))

		if tokenString != "" && h.services.AuthService.IsTokenRevoked(tokenString) {
			log.Err(ErrTokenRevoked).Send()
			http.Error(w, ErrTokenRevoked.Error(), http.StatusForbidden)
			return
		}

		if tokenString == "" {
			log.Err(ErrNoTokenInRequest).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken returns the token part of a raw "Authorization" header
// value of the expected form:
//
//	Authorization: Bearer <token>
//
// A missing header, a header without a token part, or an empty token part
// all yield the empty string. Malformedness is not an error at this stage;
// the gate decides what an empty token means.
func extractBearerToken(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}
