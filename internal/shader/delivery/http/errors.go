package http

import (
	"errors"

	"shadergen-srv/internal/shader"
	pkgErrors "shadergen-srv/pkg/errors"
)

var (
	errInvalidBody     = pkgErrors.NewHTTPError(400, "Invalid request body: prompt is required")
	errPromptRequired  = pkgErrors.NewHTTPError(400, "Prompt is required")
	errUnexpectedShape = pkgErrors.NewHTTPError(400, "Unexpected response shape from model")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shader.ErrPromptRequired):
		return errPromptRequired
	case errors.Is(err, shader.ErrUnexpectedShape):
		return errUnexpectedShape
	case errors.Is(err, shader.ErrAPICall):
		// Keep the wrapped message so the caller sees the upstream status
		// and body text.
		return pkgErrors.NewHTTPError(500, err.Error())
	default:
		return err
	}
}
