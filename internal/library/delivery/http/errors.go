package http

import (
	"errors"

	"shadergen-srv/internal/library"
	pkgErrors "shadergen-srv/pkg/errors"
)

var (
	errInvalidBody     = pkgErrors.NewHTTPError(400, "Invalid request body: program is required")
	errProgramRequired = pkgErrors.NewHTTPError(400, "Program is required")
	errShaderNotFound  = pkgErrors.NewHTTPError(404, "Shader not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, library.ErrProgramRequired):
		return errProgramRequired
	case errors.Is(err, library.ErrShaderNotFound):
		return errShaderNotFound
	default:
		return err
	}
}
