package http

import (
	"shadergen-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a shader program
// @Description Generate a complete shader program from a natural-language prompt
// @Tags Shader
// @Accept json
// @Produce json
// @Param body body generateReq true "Generate request"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/shaders/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "shader.delivery.http.Generate: processGenerateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "shader.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}
