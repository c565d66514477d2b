package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSaveRequest(c *gin.Context) (saveReq, error) {
	var req saveReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}

	return req, nil
}

func (h *handler) processGetRequest(c *gin.Context) (getReq, error) {
	req := getReq{
		ShaderID: c.Param("shader_id"),
	}

	return req, nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	req := listReq{
		Limit:  limit,
		Offset: offset,
	}

	return req, nil
}
