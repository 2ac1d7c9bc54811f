package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/service"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/store"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/utils"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", response.User.ID).Msg("user successfully registered")

	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", response.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, response, http.StatusOK)
}

// logout revokes the token the request was authorized with. The token is
// re-extracted from the header rather than taken from the context: revocation
// operates on the exact presented string.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString := extractBearerToken(r.Header.Get("Authorization"))

	if err := h.services.AuthService.Logout(ctx, tokenString); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingToken):
			log.Err(err).Msg("no token provided")
			http.Error(w, "no token provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during logout")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.LogoutResponse{
		Message:      "Logged out successfully",
		Instructions: "Please remove the JWT token from your local storage",
	}, http.StatusOK)
}
