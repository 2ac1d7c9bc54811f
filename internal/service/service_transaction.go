package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/adapter"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/store"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// fallbackCoordinates is the places-search center used when a submitted city
// cannot be geocoded to any location.
const fallbackCoordinates = "0,0"

// transactionService is the concrete implementation of TransactionService.
// It orchestrates the external geo lookups and persists one transaction
// record per search.
type transactionService struct {
	transactionRepository store.TransactionRepository
	geo                   adapter.GeoAPIClient
	logger                *logger.Logger
}

// NewTransactionService constructs a TransactionService wired to the given
// repository and geo API client.
func NewTransactionService(transactionRepository store.TransactionRepository, geo adapter.GeoAPIClient, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		geo:                   geo,
		logger:                logger,
	}
}

// Search performs the places lookup orchestration.
//
// A non-empty city takes precedence: it is geocoded, and the first result's
// coordinates replace whatever the request carried. Zero geocoding results
// fall back to "0,0". If the (possibly defaulted) coordinates are non-empty,
// restaurants around them are searched. A transaction record is persisted
// with the city as given and the resolved coordinates, regardless of whether
// either external call returned anything useful.
//
// External call failures are NOT recovered here: no retry, no fallback.
// The wrapped error propagates to the transport layer.
//
// The returned raw payload is the body of the last external call made, or
// nil when the request carried neither a city nor coordinates.
func (s *transactionService) Search(ctx context.Context, userID string, search models.TransactionSearch) (models.Transaction, json.RawMessage, error) {
	log := logger.FromContext(ctx)

	city := search.City
	coordinates := search.Coordinates
	var apiResult json.RawMessage

	if city != "" {
		geocoded, err := s.geo.GeocodeCity(ctx, city)
		if err != nil {
			log.Err(err).Str("city", city).Msg("geocoding call failed")
			return models.Transaction{}, nil, fmt.Errorf("geocoding city: %w", err)
		}
		apiResult = geocoded.Raw

		if len(geocoded.Features) == 0 {
			coordinates = fallbackCoordinates
		} else {
			coordinates = formatCoordinates(geocoded.Features[0].Geometry.Coordinates)
		}
	}

	if coordinates != "" {
		places, err := s.geo.SearchPlaces(ctx, coordinates)
		if err != nil {
			log.Err(err).Str("coordinates", coordinates).Msg("places call failed")
			return models.Transaction{}, nil, fmt.Errorf("searching places: %w", err)
		}
		apiResult = places.Raw
	}

	transaction, err := s.transactionRepository.CreateTransaction(ctx, models.Transaction{
		City:        city,
		Coordinates: coordinates,
		Date:        time.Now(),
		UserID:      userID,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("transaction persistence failed")
		return models.Transaction{}, nil, fmt.Errorf("saving transaction: %w", err)
	}

	return transaction, apiResult, nil
}

// ListByUser returns every transaction of the given user, oldest first.
func (s *transactionService) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	transactions, err := s.transactionRepository.FindTransactionsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("transaction listing failed")
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return transactions, nil
}

// formatCoordinates renders a GeoJSON coordinate pair as the "lon,lat"
// string the places API expects.
func formatCoordinates(coordinates []float64) string {
	parts := make([]string, 0, len(coordinates))
	for _, c := range coordinates {
		parts = append(parts, strconv.FormatFloat(c, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}
