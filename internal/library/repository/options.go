package repository

import "encoding/json"

type CreateShaderOptions struct {
	Prompt  string
	Program json.RawMessage
}

type ListShadersOptions struct {
	Limit  int
	Offset int
}
