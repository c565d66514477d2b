package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	pkghttp "shadergen-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Generate issues a single generateContent call for the prompt and returns
	// the raw response envelope on a 200 status. Transport failures map to
	// ErrConnection, non-200 statuses to *BadStatusError.
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if
// empty. APIKey must be set; construction fails without it so a missing key
// aborts startup rather than failing per request.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	return &geminiImpl{
		apiKey:            cfg.APIKey,
		model:             cfg.Model,
		systemInstruction: cfg.SystemInstruction,
		responseSchema:    cfg.ResponseSchema,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: RequestTimeout,
		}),
	}, nil
}
