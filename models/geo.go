package models

import "encoding/json"

// GeoResponse is a payload returned by the external geocoding/places API.
// Only the feature geometry is decoded; the raw body is kept verbatim so the
// transactions API can pass it through to clients untouched.
type GeoResponse struct {
	// Raw is the unmodified response body.
	Raw json.RawMessage `json:"-"`

	// Features is the GeoJSON feature list of the response.
	Features []GeoFeature `json:"features"`
}

// GeoFeature is a single GeoJSON feature of a GeoResponse.
type GeoFeature struct {
	Geometry GeoGeometry `json:"geometry"`
}

// GeoGeometry carries the point coordinates of a feature as [lon, lat].
type GeoGeometry struct {
	Coordinates []float64 `json:"coordinates"`
}
