package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// writeTestImage drops a fake JPEG artifact into a temp dir.
func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.jpg")
	if err := os.WriteFile(path, []byte("not-a-real-jpeg"), 0o644); err != nil {
		t.Fatalf("write test image: %v", err)
	}
	return path
}

// candidateResponse builds a minimal generateContent reply.
func candidateResponse(text string) []byte {
	body := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]interface{}{{"text": text}},
			}},
		},
	}
	data, _ := json.Marshal(body)
	return data
}

func TestGeminiRecognizeText(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected key in query, got %q", r.URL.RawQuery)
		}
		w.Write(candidateResponse("Hello world\n"))
	}))
	defer srv.Close()

	g, err := NewGemini(GeminiConfig{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewGemini failed: %v", err)
	}

	result, err := g.Recognize(context.Background(), writeTestImage(t))
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if result.Text != "Hello world" {
		t.Errorf("Expected trimmed 'Hello world', got %q", result.Text)
	}
	if gotPath != "/models/"+DefaultGeminiModel+":generateContent" {
		t.Errorf("Unexpected request path %q", gotPath)
	}
}

func TestGeminiEmptyCandidatesMeansNoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	g, _ := NewGemini(GeminiConfig{APIKey: "test-key", BaseURL: srv.URL})

	result, err := g.Recognize(context.Background(), writeTestImage(t))
	if err != nil {
		t.Fatalf("Expected no error for empty candidates, got %v", err)
	}
	if result.Text != "" {
		t.Errorf("Expected empty text, got %q", result.Text)
	}
}

func TestGeminiAPIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded","code":429}}`))
	}))
	defer srv.Close()

	g, _ := NewGemini(GeminiConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := g.Recognize(context.Background(), writeTestImage(t))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if !apiErr.IsRateLimited() {
		t.Errorf("Expected rate-limited error, got status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "quota exceeded" {
		t.Errorf("Expected API message, got %q", apiErr.Message)
	}
}

func TestGeminiMissingImage(t *testing.T) {
	g, _ := NewGemini(GeminiConfig{APIKey: "test-key", BaseURL: "http://127.0.0.1:0"})

	_, err := g.Recognize(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	if !errors.Is(err, ErrImageUnreadable) {
		t.Errorf("Expected ErrImageUnreadable, got %v", err)
	}
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	_, err := NewGemini(GeminiConfig{})
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("Expected ErrNoAPIKey, got %v", err)
	}
}
