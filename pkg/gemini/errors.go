package gemini

import (
	"errors"
	"fmt"
)

// ErrConnection marks a transport-level failure: connection refused, DNS
// failure, or the request timeout elapsing.
var ErrConnection = errors.New("gemini: connection failed")

// BadStatusError is returned when the API answers with a non-200 status. It
// keeps the upstream status and body so callers can surface them.
type BadStatusError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *BadStatusError) Error() string {
	return fmt.Sprintf("gemini: API returned status %d: %s", e.Status, e.Body)
}
