package errors

import "fmt"

// HTTPError carries an HTTP status code and a client-facing message. Delivery
// layers map domain errors to HTTPError; pkg/response renders it.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
