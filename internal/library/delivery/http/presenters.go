package http

import (
	"encoding/json"
	"time"

	"shadergen-srv/internal/library"
)

type saveReq struct {
	Prompt  string          `json:"prompt"`
	Program json.RawMessage `json:"program" binding:"required"`
}

func (r saveReq) toInput() library.SaveInput {
	return library.SaveInput{
		Prompt:  r.Prompt,
		Program: r.Program,
	}
}

type getReq struct {
	ShaderID string
}

func (r getReq) toInput() library.GetInput {
	return library.GetInput{
		ShaderID: r.ShaderID,
	}
}

type listReq struct {
	Limit  int
	Offset int
}

func (r listReq) toInput() library.ListInput {
	return library.ListInput{
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

type shaderResp struct {
	ID        string          `json:"id"`
	Prompt    string          `json:"prompt,omitempty"`
	Program   json.RawMessage `json:"program"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *handler) newShaderResp(o library.ShaderOutput) shaderResp {
	return shaderResp{
		ID:        o.ID,
		Prompt:    o.Prompt,
		Program:   o.Program,
		CreatedAt: o.CreatedAt,
	}
}

func (h *handler) newListResp(os []library.ShaderOutput) []shaderResp {
	resp := make([]shaderResp, len(os))
	for i, o := range os {
		resp[i] = h.newShaderResp(o)
	}
	return resp
}
