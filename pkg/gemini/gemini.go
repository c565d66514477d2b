package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Generate issues a single generateContent call and returns the raw envelope.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", BaseURL, g.model, g.apiKey)

	req := g.buildRequest(prompt)

	body, statusCode, err := g.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if statusCode != http.StatusOK {
		return nil, &BadStatusError{Status: statusCode, Body: string(body)}
	}

	return json.RawMessage(body), nil
}

// buildRequest assembles the outbound payload: user prompt, fixed system
// instruction, and the JSON response schema when configured.
func (g *geminiImpl) buildRequest(prompt string) Request {
	req := Request{
		Contents: []Content{
			{
				Parts: []Part{
					{Text: prompt},
				},
			},
		},
	}

	if g.systemInstruction != "" {
		req.SystemInstruction = &SystemInstruction{
			Parts: []Part{
				{Text: g.systemInstruction},
			},
		}
	}

	if g.responseSchema != nil {
		req.GenerationConfig = &GenerationConfig{
			ResponseMIMEType: JSONMIMEType,
			ResponseSchema:   g.responseSchema,
		}
	}

	return req
}
