package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeClient records the last Post call and replays a canned response.
type fakeClient struct {
	lastURL  string
	lastBody interface{}

	respBody   []byte
	respStatus int
	respErr    error
}

func (f *fakeClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return nil, 0, fmt.Errorf("unexpected Get call")
}

func (f *fakeClient) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	f.lastURL = url
	f.lastBody = body
	return f.respBody, f.respStatus, f.respErr
}

func newTestGemini(client *fakeClient) *geminiImpl {
	return &geminiImpl{
		apiKey:            "test-key",
		model:             "gemini-2.0-flash",
		systemInstruction: "generate shaders",
		responseSchema: map[string]interface{}{
			"type": "OBJECT",
		},
		httpClient: client,
	}
}

func TestNewGemini(t *testing.T) {
	t.Run("missing API key fails construction", func(t *testing.T) {
		_, err := NewGemini(GeminiConfig{})
		if err == nil {
			t.Fatal("expected error for missing API key, got nil")
		}
	})

	t.Run("model defaults when empty", func(t *testing.T) {
		client, err := NewGemini(GeminiConfig{APIKey: "k"})
		if err != nil {
			t.Fatalf("NewGemini failed: %v", err)
		}
		impl, ok := client.(*geminiImpl)
		if !ok {
			t.Fatalf("unexpected implementation type %T", client)
		}
		if impl.model != DefaultModel {
			t.Errorf("model mismatch: got %s, want %s", impl.model, DefaultModel)
		}
	})
}

func TestGenerate(t *testing.T) {
	envelope := `{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`

	t.Run("request targets generateContent with key in query", func(t *testing.T) {
		client := &fakeClient{respBody: []byte(envelope), respStatus: 200}
		g := newTestGemini(client)

		if _, err := g.Generate(context.Background(), "a red triangle"); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		wantURL := BaseURL + "/gemini-2.0-flash:generateContent?key=test-key"
		if client.lastURL != wantURL {
			t.Errorf("URL mismatch: got %s, want %s", client.lastURL, wantURL)
		}
	})

	t.Run("payload carries prompt, instruction and schema", func(t *testing.T) {
		client := &fakeClient{respBody: []byte(envelope), respStatus: 200}
		g := newTestGemini(client)

		if _, err := g.Generate(context.Background(), "a red triangle"); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		req, ok := client.lastBody.(Request)
		if !ok {
			t.Fatalf("unexpected body type %T", client.lastBody)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected contents shape: %+v", req.Contents)
		}
		if req.Contents[0].Parts[0].Text != "a red triangle" {
			t.Errorf("prompt mismatch: got %q", req.Contents[0].Parts[0].Text)
		}
		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "generate shaders" {
			t.Errorf("system instruction not attached: %+v", req.SystemInstruction)
		}
		if req.GenerationConfig == nil {
			t.Fatal("generation config not attached")
		}
		if req.GenerationConfig.ResponseMIMEType != JSONMIMEType {
			t.Errorf("MIME type mismatch: got %s, want %s", req.GenerationConfig.ResponseMIMEType, JSONMIMEType)
		}
		if req.GenerationConfig.ResponseSchema == nil {
			t.Error("response schema not attached")
		}
	})

	t.Run("schema and instruction omitted when unset", func(t *testing.T) {
		client := &fakeClient{respBody: []byte(envelope), respStatus: 200}
		g := &geminiImpl{apiKey: "k", model: "m", httpClient: client}

		if _, err := g.Generate(context.Background(), "hi"); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		req := client.lastBody.(Request)
		if req.SystemInstruction != nil {
			t.Errorf("system instruction should be nil, got %+v", req.SystemInstruction)
		}
		if req.GenerationConfig != nil {
			t.Errorf("generation config should be nil, got %+v", req.GenerationConfig)
		}
	})

	t.Run("returns raw envelope on 200", func(t *testing.T) {
		client := &fakeClient{respBody: []byte(envelope), respStatus: 200}
		g := newTestGemini(client)

		raw, err := g.Generate(context.Background(), "hi")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if string(raw) != envelope {
			t.Errorf("envelope mismatch: got %s", raw)
		}
		if !json.Valid(raw) {
			t.Error("envelope is not valid JSON")
		}
	})

	t.Run("transport failure maps to ErrConnection", func(t *testing.T) {
		client := &fakeClient{respErr: errors.New("dial tcp: connection refused")}
		g := newTestGemini(client)

		_, err := g.Generate(context.Background(), "hi")
		if !errors.Is(err, ErrConnection) {
			t.Fatalf("expected ErrConnection, got %v", err)
		}
		if !strings.Contains(err.Error(), "connection refused") {
			t.Errorf("cause not preserved in message: %v", err)
		}
	})

	t.Run("non-200 status maps to BadStatusError", func(t *testing.T) {
		client := &fakeClient{respBody: []byte(`{"error":{"message":"quota exceeded"}}`), respStatus: 429}
		g := newTestGemini(client)

		_, err := g.Generate(context.Background(), "hi")
		var badStatus *BadStatusError
		if !errors.As(err, &badStatus) {
			t.Fatalf("expected BadStatusError, got %v", err)
		}
		if badStatus.Status != 429 {
			t.Errorf("status mismatch: got %d, want 429", badStatus.Status)
		}
		if !strings.Contains(badStatus.Body, "quota exceeded") {
			t.Errorf("body not preserved: %s", badStatus.Body)
		}
		if !strings.Contains(err.Error(), "429") {
			t.Errorf("status missing from message: %v", err)
		}
	})
}
