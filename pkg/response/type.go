package response

// Resp is the standard JSON response body. Exactly one of Response and Error
// is set: Response on success, Error on failure.
type Resp struct {
	Response any    `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}
