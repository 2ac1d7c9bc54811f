// Package adapter implements outbound HTTP clients for external
// collaborators: the city geocoding API and the points-of-interest API.
// Neither client retries or recovers failures; errors propagate to the
// caller untouched.
package adapter

import (
	"context"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// GeoAPIClient calls the external geocoding and points-of-interest APIs.
type GeoAPIClient interface {
	// GeocodeCity resolves a free-text city name to candidate locations
	// (at most one, by the configured result limit).
	GeocodeCity(ctx context.Context, city string) (models.GeoResponse, error)

	// SearchPlaces finds restaurants around the given "lon,lat" coordinates
	// within a fixed radius, capped at a fixed result count.
	SearchPlaces(ctx context.Context, coordinates string) (models.GeoResponse, error)
}
