package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestPost(t *testing.T) {
	t.Run("sends JSON body with content type", func(t *testing.T) {
		var gotContentType string
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: 5 * time.Second})
		body, status, err := client.Post(context.Background(), srv.URL, map[string]string{"prompt": "hi"}, nil)
		if err != nil {
			t.Fatalf("Post failed: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status mismatch: got %d, want 200", status)
		}
		if gotContentType != "application/json" {
			t.Errorf("content type mismatch: got %s", gotContentType)
		}

		var decoded map[string]string
		if err := json.Unmarshal(gotBody, &decoded); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}
		if decoded["prompt"] != "hi" {
			t.Errorf("request body mismatch: got %s", gotBody)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("response body mismatch: got %s", body)
		}
	})

	t.Run("non-200 status returned without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("quota exceeded"))
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: 5 * time.Second})
		body, status, err := client.Post(context.Background(), srv.URL, nil, nil)
		if err != nil {
			t.Fatalf("Post failed: %v", err)
		}
		if status != http.StatusTooManyRequests {
			t.Errorf("status mismatch: got %d, want 429", status)
		}
		if string(body) != "quota exceeded" {
			t.Errorf("body mismatch: got %s", body)
		}
	})

	t.Run("timeout elapses with no retry", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: 50 * time.Millisecond})
		_, _, err := client.Post(context.Background(), srv.URL, nil, nil)
		if err == nil {
			t.Fatal("expected timeout error, got nil")
		}
		time.Sleep(250 * time.Millisecond)
		if got := calls.Load(); got != 1 {
			t.Errorf("request retried: %d calls, want 1", got)
		}
	})

	t.Run("custom headers applied", func(t *testing.T) {
		var gotHeader string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeader = r.Header.Get("X-Custom")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: 5 * time.Second})
		if _, _, err := client.Post(context.Background(), srv.URL, nil, map[string]string{"X-Custom": "yes"}); err != nil {
			t.Fatalf("Post failed: %v", err)
		}
		if gotHeader != "yes" {
			t.Errorf("header mismatch: got %q, want %q", gotHeader, "yes")
		}
	})
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method mismatch: got %s", r.Method)
		}
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{Timeout: 5 * time.Second})
	body, status, err := client.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if status != http.StatusOK || string(body) != "pong" {
		t.Errorf("response mismatch: status %d, body %s", status, body)
	}
}
