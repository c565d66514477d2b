package http

import (
	"shadergen-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Save a generated shader program
// @Description Persist a generated shader program to the library
// @Tags Library
// @Accept json
// @Produce json
// @Param body body saveReq true "Save request"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/shaders [post]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "library.delivery.http.Save: processSaveRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "library.delivery.http.Save: usecase Save failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newShaderResp(o))
}

// @Summary Get a saved shader program
// @Description Return a saved shader program by ID
// @Tags Library
// @Accept json
// @Produce json
// @Param shader_id path string true "Shader ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/shaders/{shader_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "library.delivery.http.Get: processGetRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Get(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "library.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newShaderResp(o))
}

// @Summary List saved shader programs
// @Description Paginate saved shader programs, newest first
// @Tags Library
// @Accept json
// @Produce json
// @Param limit query int false "Number of records per page (default 20)"
// @Param offset query int false "Number of records to skip (default 0)"
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/shaders [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "library.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "library.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}
