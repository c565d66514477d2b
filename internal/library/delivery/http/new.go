package http

import (
	"shadergen-srv/internal/library"
	"shadergen-srv/pkg/discord"
	"shadergen-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the library HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      library.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc library.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
