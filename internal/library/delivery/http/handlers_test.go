package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shadergen-srv/internal/library"
	"shadergen-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// fakeUseCase replays canned outputs and records inputs.
type fakeUseCase struct {
	saveOut library.ShaderOutput
	saveErr error
	getOut  library.ShaderOutput
	getErr  error
	listOut []library.ShaderOutput
	listErr error

	gotSave library.SaveInput
	gotGet  library.GetInput
	gotList library.ListInput
}

func (f *fakeUseCase) Save(ctx context.Context, input library.SaveInput) (library.ShaderOutput, error) {
	f.gotSave = input
	return f.saveOut, f.saveErr
}

func (f *fakeUseCase) Get(ctx context.Context, input library.GetInput) (library.ShaderOutput, error) {
	f.gotGet = input
	return f.getOut, f.getErr
}

func (f *fakeUseCase) List(ctx context.Context, input library.ListInput) ([]library.ShaderOutput, error) {
	f.gotList = input
	return f.listOut, f.listErr
}

func setupRouter(uc library.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.Init(log.ZapConfig{Level: "fatal", Mode: "development", Encoding: "console"})

	r := gin.New()
	New(logger, uc, nil).RegisterRoutes(r.Group(""))
	return r
}

func sampleOutput() library.ShaderOutput {
	return library.ShaderOutput{
		ID:        "a3b1c2d4",
		Prompt:    "a red triangle",
		Program:   json.RawMessage(`{"vertex_shader":"void main() {}"}`),
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveHandler(t *testing.T) {
	t.Run("success returns saved shader", func(t *testing.T) {
		uc := &fakeUseCase{saveOut: sampleOutput()}
		r := setupRouter(uc)

		body := `{"prompt":"a red triangle","program":{"vertex_shader":"void main() {}"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shaders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, body %s", w.Code, w.Body.String())
		}
		if uc.gotSave.Prompt != "a red triangle" {
			t.Errorf("prompt mismatch: got %q", uc.gotSave.Prompt)
		}
		if !strings.Contains(w.Body.String(), `"id":"a3b1c2d4"`) {
			t.Errorf("saved shader missing from body: %s", w.Body.String())
		}
	})

	t.Run("missing program returns 400", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/shaders", strings.NewReader(`{"prompt":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want 400", w.Code)
		}
	})
}

func TestGetHandler(t *testing.T) {
	t.Run("success returns shader by ID", func(t *testing.T) {
		uc := &fakeUseCase{getOut: sampleOutput()}
		r := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shaders/a3b1c2d4", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, body %s", w.Code, w.Body.String())
		}
		if uc.gotGet.ShaderID != "a3b1c2d4" {
			t.Errorf("shader ID mismatch: got %q", uc.gotGet.ShaderID)
		}
	})

	t.Run("unknown shader returns 404", func(t *testing.T) {
		uc := &fakeUseCase{getErr: library.ErrShaderNotFound}
		r := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shaders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status mismatch: got %d, want 404", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Shader not found") {
			t.Errorf("message mismatch: %s", w.Body.String())
		}
	})
}

func TestListHandler(t *testing.T) {
	t.Run("query params pass through", func(t *testing.T) {
		uc := &fakeUseCase{listOut: []library.ShaderOutput{sampleOutput()}}
		r := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shaders?limit=5&offset=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, body %s", w.Code, w.Body.String())
		}
		if uc.gotList.Limit != 5 || uc.gotList.Offset != 10 {
			t.Errorf("pagination mismatch: got limit=%d offset=%d", uc.gotList.Limit, uc.gotList.Offset)
		}
	})

	t.Run("defaults applied without query params", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shaders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d", w.Code)
		}
		if uc.gotList.Limit != 20 || uc.gotList.Offset != 0 {
			t.Errorf("default pagination mismatch: got limit=%d offset=%d", uc.gotList.Limit, uc.gotList.Offset)
		}
	})
}
