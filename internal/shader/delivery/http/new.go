package http

import (
	"shadergen-srv/internal/shader"
	"shadergen-srv/pkg/discord"
	"shadergen-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the shader HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      shader.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc shader.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
