package usecase

import (
	"shadergen-srv/internal/shader"
	"shadergen-srv/pkg/gemini"
	"shadergen-srv/pkg/log"
)

type implUseCase struct {
	gemini gemini.IGemini
	l      log.Logger
}

// New - Factory function
func New(gemini gemini.IGemini, l log.Logger) shader.UseCase {
	return &implUseCase{
		gemini: gemini,
		l:      l,
	}
}
