package http

import (
	"encoding/json"
	"net/http"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/utils"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// listTransactions returns every transaction of the authenticated user as a
// JSON array. The owning user never appears in the response shape.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	transactions, err := h.services.TransactionService.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during transaction listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

// searchTransactions runs the places lookup for the submitted city and/or
// coordinates, persists the resulting transaction, and returns it together
// with the raw payload of the last external API call.
//
// External API failures are deliberately not recovered here: they surface as
// HTTP 500, matching the no-retry policy of the orchestration.
func (h *Handler) searchTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var search models.TransactionSearch
	if err := json.NewDecoder(r.Body).Decode(&search); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	transaction, apiResult, err := h.services.TransactionService.Search(ctx, userID, search)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during transaction search")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TransactionSearchResponse{
		Transaction: transaction,
		APIResult:   apiResult,
	}, http.StatusCreated)
}
