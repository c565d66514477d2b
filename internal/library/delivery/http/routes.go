package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.POST("/shaders", h.Save)
		api.GET("/shaders", h.List)
		api.GET("/shaders/:shader_id", h.Get)
	}
}
