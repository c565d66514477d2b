package repository

import (
	"context"

	"shadergen-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateShader(ctx context.Context, opt CreateShaderOptions) (model.ShaderProgram, error)
	GetShaderByID(ctx context.Context, id string) (model.ShaderProgram, error)
	ListShaders(ctx context.Context, opt ListShadersOptions) ([]model.ShaderProgram, error)
}

// CacheRepository - read-through cache for saved shader programs.
type CacheRepository interface {
	GetShader(ctx context.Context, id string) (*model.ShaderProgram, error)
	SaveShader(ctx context.Context, shader model.ShaderProgram) error
}
