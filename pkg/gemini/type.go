package gemini

import pkghttp "shadergen-srv/pkg/http"

// GeminiConfig holds the configuration for the Gemini client. SystemInstruction
// and ResponseSchema are fixed for the process lifetime; when set, every request
// carries them together with response_mime_type "application/json".
type GeminiConfig struct {
	APIKey            string
	Model             string
	SystemInstruction string
	ResponseSchema    map[string]interface{}
}

// geminiImpl implements IGemini using the Google Gemini API.
type geminiImpl struct {
	apiKey            string
	model             string
	systemInstruction string
	responseSchema    map[string]interface{}
	httpClient        pkghttp.IClient
}

// Request defines the request body for Generate Content API
type Request struct {
	Contents          []Content          `json:"contents"`
	SystemInstruction *SystemInstruction `json:"system_instruction,omitempty"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
}

// Content represents a single content block
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content (text or blob)
type Part struct {
	Text string `json:"text,omitempty"`
}

// SystemInstruction carries the fixed system prompt.
type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig constrains the model output shape.
type GenerationConfig struct {
	ResponseMIMEType string                 `json:"response_mime_type,omitempty"`
	ResponseSchema   map[string]interface{} `json:"response_schema,omitempty"`
}

// Response defines the response body from Generate Content API
type Response struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
}

// Candidate represents a generated candidate
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata represents token usage
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
