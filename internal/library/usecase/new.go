package usecase

import (
	"shadergen-srv/internal/library"
	"shadergen-srv/internal/library/repository"
	"shadergen-srv/pkg/log"
)

type implUseCase struct {
	repo  repository.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory function. Cache is optional; pass nil to disable.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	l log.Logger,
) library.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
