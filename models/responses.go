package models

import "encoding/json"

// AuthResponse is the body returned by the register and login endpoints.
type AuthResponse struct {
	// AccessToken is the signed session token the client must present in the
	// Authorization header on protected routes.
	AccessToken string `json:"access_token"`

	// User is the minimal identity summary of the authenticated account.
	User UserSummary `json:"user"`
}

// LogoutResponse is the body returned by the logout endpoint.
type LogoutResponse struct {
	Message      string `json:"message"`
	Instructions string `json:"instructions,omitempty"`
}

// TransactionSearchResponse is the body returned by the transaction search
// endpoint: the persisted transaction plus the raw payload of the last
// external API call (null when no external call was made).
type TransactionSearchResponse struct {
	Transaction Transaction     `json:"transaction"`
	APIResult   json.RawMessage `json:"apiResult"`
}
