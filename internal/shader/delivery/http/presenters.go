package http

import (
	"shadergen-srv/internal/shader"
)

type generateReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (r generateReq) toInput() shader.GenerateInput {
	return shader.GenerateInput{
		Prompt: r.Prompt,
	}
}

func (h *handler) newGenerateResp(o shader.GenerateOutput) map[string]interface{} {
	return o.Program
}
