package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shadergen-srv/internal/shader"
	"shadergen-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// fakeUseCase replays a canned output or error.
type fakeUseCase struct {
	out shader.GenerateOutput
	err error

	gotInput shader.GenerateInput
}

func (f *fakeUseCase) Generate(ctx context.Context, input shader.GenerateInput) (shader.GenerateOutput, error) {
	f.gotInput = input
	return f.out, f.err
}

func setupRouter(uc shader.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.Init(log.ZapConfig{Level: "fatal", Mode: "development", Encoding: "console"})

	r := gin.New()
	New(logger, uc, nil).RegisterRoutes(r.Group(""))
	return r
}

func doGenerate(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shaders/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateHandler(t *testing.T) {
	t.Run("success wraps the program under response", func(t *testing.T) {
		uc := &fakeUseCase{
			out: shader.GenerateOutput{Program: map[string]interface{}{
				"vertex_shader": "void main() {}",
				"uniforms":      map[string]interface{}{"u_time": 0.0},
			}},
		}
		r := setupRouter(uc)

		w := doGenerate(t, r, `{"prompt":"a red triangle"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want 200, body %s", w.Code, w.Body.String())
		}
		if uc.gotInput.Prompt != "a red triangle" {
			t.Errorf("prompt mismatch: got %q", uc.gotInput.Prompt)
		}

		var body struct {
			Response map[string]interface{} `json:"response"`
			Error    string                 `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Error != "" {
			t.Errorf("unexpected error field: %s", body.Error)
		}
		if body.Response["vertex_shader"] != "void main() {}" {
			t.Errorf("program missing from response: %v", body.Response)
		}
	})

	t.Run("missing prompt returns 400", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{})

		w := doGenerate(t, r, `{}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error"`) {
			t.Errorf("error field missing: %s", w.Body.String())
		}
	})

	t.Run("invalid JSON body returns 400", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{})

		w := doGenerate(t, r, `not json`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want 400", w.Code)
		}
	})

	t.Run("unexpected model output returns 400", func(t *testing.T) {
		uc := &fakeUseCase{err: fmt.Errorf("%w: no candidates in envelope", shader.ErrUnexpectedShape)}
		r := setupRouter(uc)

		w := doGenerate(t, r, `{"prompt":"a red triangle"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Unexpected response shape") {
			t.Errorf("message mismatch: %s", w.Body.String())
		}
	})

	t.Run("API failure returns 500 with upstream detail", func(t *testing.T) {
		uc := &fakeUseCase{
			err: fmt.Errorf("%w: gemini: API returned status 429: quota exceeded", shader.ErrAPICall),
		}
		r := setupRouter(uc)

		w := doGenerate(t, r, `{"prompt":"a red triangle"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status mismatch: got %d, want 500", w.Code)
		}
		if !strings.Contains(w.Body.String(), "429") || !strings.Contains(w.Body.String(), "quota exceeded") {
			t.Errorf("upstream detail lost: %s", w.Body.String())
		}
	})

	t.Run("unknown error returns generic 500", func(t *testing.T) {
		uc := &fakeUseCase{err: fmt.Errorf("boom")}
		r := setupRouter(uc)

		w := doGenerate(t, r, `{"prompt":"a red triangle"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status mismatch: got %d, want 500", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Internal server error") {
			t.Errorf("message mismatch: %s", w.Body.String())
		}
	})
}
