package adapter

import "errors"

// ErrExternalAPIFailure is returned when an upstream geo API responds with a
// non-2xx status. The full status and body are attached by wrapping.
var ErrExternalAPIFailure = errors.New("external API call failed")
