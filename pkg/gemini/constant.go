package gemini

import "time"

const (
	// BaseURL is the Gemini generateContent API base URL.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"

	// RequestTimeout bounds a single generateContent call. No retries are
	// performed; a timed-out call fails the request.
	RequestTimeout = 10 * time.Second

	// JSONMIMEType asks the API to emit the answer as a JSON document.
	JSONMIMEType = "application/json"
)
