package shader

import "errors"

// Domain errors
var (
	// ErrPromptRequired - prompt is missing from the request
	ErrPromptRequired = errors.New("shader: prompt is required")

	// ErrAPICall - the Gemini call failed (connection or non-200 status)
	ErrAPICall = errors.New("shader: API call failed")

	// ErrUnexpectedShape - the response envelope or the embedded JSON answer
	// did not match the expected shape
	ErrUnexpectedShape = errors.New("shader: unexpected response shape")
)
