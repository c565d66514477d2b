package usecase

import (
	"encoding/json"
	"fmt"

	"shadergen-srv/internal/shader"
	"shadergen-srv/pkg/gemini"
)

// normalize extracts the embedded JSON answer from the response envelope.
// Expected shape: candidates[0].content.parts[0].text, where text is a JSON
// object. Every deviation (missing keys, empty arrays, wrong types, answer
// that is not JSON) collapses into ErrUnexpectedShape; the cause is wrapped
// so logs can still tell them apart.
func (uc *implUseCase) normalize(envelope json.RawMessage) (map[string]interface{}, error) {
	var resp gemini.Response
	if err := json.Unmarshal(envelope, &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid envelope: %v", shader.ErrUnexpectedShape, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidates in envelope", shader.ErrUnexpectedShape)
	}

	// Only the first candidate's first part is consulted.
	text := resp.Candidates[0].Content.Parts[0].Text

	var answer map[string]interface{}
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return nil, fmt.Errorf("%w: answer is not a JSON object: %v", shader.ErrUnexpectedShape, err)
	}

	return answer, nil
}
