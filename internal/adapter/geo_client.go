package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/config"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

const (
	// geocodeResultLimit caps city autocomplete results; only the first
	// candidate is ever used.
	geocodeResultLimit = 1

	// placesCategory restricts the points-of-interest search to restaurants.
	placesCategory = "catering.restaurant"

	// placesSearchRadiusMeters is the fixed circle radius of every search.
	placesSearchRadiusMeters = 5000

	// placesResultLimit caps the number of returned places.
	placesResultLimit = 10
)

// geoAPIClient is the resty-backed implementation of [GeoAPIClient].
// One resty client per upstream API, each with its own base URL and key.
type geoAPIClient struct {
	cityClient   *resty.Client
	cityAPIKey   string
	placesClient *resty.Client
	placesAPIKey string
}

// NewGeoAPIClient constructs a [GeoAPIClient] from the adapter configuration.
// A non-positive timeout falls back to 15 seconds.
func NewGeoAPIClient(cfg config.Adapter) GeoAPIClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &geoAPIClient{
		cityClient: resty.New().
			SetBaseURL(strings.TrimRight(cfg.CityAPIURL, "/")).
			SetTimeout(timeout),
		cityAPIKey: cfg.CityAPIKey,
		placesClient: resty.New().
			SetBaseURL(strings.TrimRight(cfg.PlacesAPIURL, "/")).
			SetTimeout(timeout),
		placesAPIKey: cfg.PlacesAPIKey,
	}
}

// GeocodeCity calls the autocomplete endpoint of the geocoding API with the
// free-text city name and returns the decoded feature list plus the raw body.
func (g *geoAPIClient) GeocodeCity(ctx context.Context, city string) (models.GeoResponse, error) {
	resp, err := g.cityClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"text":   city,
			"limit":  strconv.Itoa(geocodeResultLimit),
			"apiKey": g.cityAPIKey,
		}).
		Get("/autocomplete")
	if err != nil {
		return models.GeoResponse{}, fmt.Errorf("geocode request: %w", err)
	}

	return decodeGeoResponse(resp)
}

// SearchPlaces calls the places endpoint of the points-of-interest API,
// searching restaurants within placesSearchRadiusMeters of the given
// "lon,lat" coordinates, biased towards them, capped at placesResultLimit.
func (g *geoAPIClient) SearchPlaces(ctx context.Context, coordinates string) (models.GeoResponse, error) {
	resp, err := g.placesClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"categories": placesCategory,
			"filter":     fmt.Sprintf("circle:%s,%d", coordinates, placesSearchRadiusMeters),
			"bias":       "proximity:" + coordinates,
			"limit":      strconv.Itoa(placesResultLimit),
			"apiKey":     g.placesAPIKey,
		}).
		Get("/places")
	if err != nil {
		return models.GeoResponse{}, fmt.Errorf("places request: %w", err)
	}

	return decodeGeoResponse(resp)
}

// decodeGeoResponse checks the upstream status code and decodes the body into
// a [models.GeoResponse], keeping the raw payload verbatim for pass-through.
func decodeGeoResponse(resp *resty.Response) (models.GeoResponse, error) {
	if resp.IsError() {
		return models.GeoResponse{}, fmt.Errorf("%w: status %d: %s", ErrExternalAPIFailure, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	geo := models.GeoResponse{Raw: json.RawMessage(resp.Body())}
	if err := json.Unmarshal(resp.Body(), &geo); err != nil {
		return models.GeoResponse{}, fmt.Errorf("decode geo response: %w", err)
	}

	return geo, nil
}
