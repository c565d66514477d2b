package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	var req generateReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}

	return req, nil
}
