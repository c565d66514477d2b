package library

import (
	"encoding/json"
	"time"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type SaveInput struct {
	Prompt  string
	Program json.RawMessage
}

type GetInput struct {
	ShaderID string
}

type ListInput struct {
	Limit  int
	Offset int
}

type ShaderOutput struct {
	ID        string
	Prompt    string
	Program   json.RawMessage
	CreatedAt time.Time
}
