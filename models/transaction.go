package models

import "time"

// Transaction is a record of a places lookup performed by a user.
// The owning user is tracked at the persistence layer but excluded from the
// JSON shape: listing endpoints must never leak account identifiers.
type Transaction struct {
	// ID is the unique identifier of the transaction, assigned by the database.
	ID string `json:"id"`

	// City is the city name exactly as submitted by the client.
	// Empty when the search was coordinate-based.
	City string `json:"city"`

	// Coordinates is the "lon,lat" pair the places search was centered on:
	// either resolved from the city, taken from the request as-is, or the
	// "0,0" fallback when the city could not be geocoded.
	Coordinates string `json:"coordinates"`

	// Date is the server-side timestamp of the lookup.
	Date time.Time `json:"date"`

	// UserID is the owning user. Persisted, never serialized.
	UserID string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionSearch is the request body of POST /transactions/search.
// Both fields are optional; a non-empty City takes precedence over
// Coordinates.
type TransactionSearch struct {
	City        string `json:"city,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
}
