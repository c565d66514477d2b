package usecase

import (
	"context"
	"fmt"

	"shadergen-srv/internal/shader"
)

// Generate - prompt to complete shader program.
// Flow: validate → Gemini call → extract answer → decode → merge defaults → return
func (uc *implUseCase) Generate(ctx context.Context, input shader.GenerateInput) (shader.GenerateOutput, error) {
	if input.Prompt == "" {
		return shader.GenerateOutput{}, shader.ErrPromptRequired
	}

	envelope, err := uc.gemini.Generate(ctx, input.Prompt)
	if err != nil {
		uc.l.Errorf(ctx, "shader.usecase.Generate: Gemini call failed: %v", err)
		return shader.GenerateOutput{}, fmt.Errorf("%w: %v", shader.ErrAPICall, err)
	}

	answer, err := uc.normalize(envelope)
	if err != nil {
		uc.l.Errorf(ctx, "shader.usecase.Generate: normalize failed: %v", err)
		return shader.GenerateOutput{}, err
	}

	merged := deepMerge(defaultTree(), answer)

	return shader.GenerateOutput{Program: merged}, nil
}
