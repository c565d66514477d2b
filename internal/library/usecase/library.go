package usecase

import (
	"context"
	"errors"
	"fmt"

	"shadergen-srv/internal/library"
	"shadergen-srv/internal/library/repository"
	"shadergen-srv/internal/model"
)

// Save - Persist a generated shader program.
func (uc *implUseCase) Save(ctx context.Context, input library.SaveInput) (library.ShaderOutput, error) {
	if len(input.Program) == 0 {
		return library.ShaderOutput{}, library.ErrProgramRequired
	}

	sp, err := uc.repo.CreateShader(ctx, repository.CreateShaderOptions{
		Prompt:  input.Prompt,
		Program: input.Program,
	})
	if err != nil {
		uc.l.Errorf(ctx, "library.usecase.Save: CreateShader failed: %v", err)
		return library.ShaderOutput{}, fmt.Errorf("save shader: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SaveShader(ctx, sp); err != nil {
			uc.l.Warnf(ctx, "library.usecase.Save: cache write failed: %v", err)
		}
	}

	return newShaderOutput(sp), nil
}

// Get - Fetch a saved shader program by ID, read-through cache.
func (uc *implUseCase) Get(ctx context.Context, input library.GetInput) (library.ShaderOutput, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetShader(ctx, input.ShaderID)
		if err != nil {
			uc.l.Warnf(ctx, "library.usecase.Get: cache read failed: %v", err)
		}
		if cached != nil {
			return newShaderOutput(*cached), nil
		}
	}

	sp, err := uc.repo.GetShaderByID(ctx, input.ShaderID)
	if errors.Is(err, repository.ErrNotFound) {
		return library.ShaderOutput{}, library.ErrShaderNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "library.usecase.Get: GetShaderByID failed: %v", err)
		return library.ShaderOutput{}, fmt.Errorf("get shader: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SaveShader(ctx, sp); err != nil {
			uc.l.Warnf(ctx, "library.usecase.Get: cache write failed: %v", err)
		}
	}

	return newShaderOutput(sp), nil
}

// List - List saved shader programs, newest first.
func (uc *implUseCase) List(ctx context.Context, input library.ListInput) ([]library.ShaderOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = library.DefaultListLimit
	}
	if limit > library.MaxListLimit {
		limit = library.MaxListLimit
	}

	shaders, err := uc.repo.ListShaders(ctx, repository.ListShadersOptions{
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "library.usecase.List: ListShaders failed: %v", err)
		return nil, fmt.Errorf("list shaders: %w", err)
	}

	out := make([]library.ShaderOutput, len(shaders))
	for i, sp := range shaders {
		out[i] = newShaderOutput(sp)
	}
	return out, nil
}

func newShaderOutput(sp model.ShaderProgram) library.ShaderOutput {
	return library.ShaderOutput{
		ID:        sp.ID,
		Prompt:    sp.Prompt,
		Program:   sp.Program,
		CreatedAt: sp.CreatedAt,
	}
}
