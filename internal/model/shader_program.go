package model

import (
	"encoding/json"
	"time"
)

// ShaderProgram is a generated shader program saved to the library. Program
// holds the full merged result returned to the caller at generation time.
type ShaderProgram struct {
	ID        string
	Prompt    string
	Program   json.RawMessage
	CreatedAt time.Time
}
