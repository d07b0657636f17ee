package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const digest = `# 🤖 AI Daily Digest

### 1. OpenAI releases new model

A faster model.

*📰 Alpha | 🏢 OpenAI*
[→ Read more](https://example.com/openai)

---
`

func newTestHandler(t *testing.T, content string) *Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "digest.md")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write digest: %v", err)
		}
	}

	handler := NewHandler(path, "test")
	handler.now = func() time.Time { return time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC) }
	return handler
}

func serve(handler *Handler, path string) *httptest.ResponseRecorder {
	router := NewServer(handler)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestGetEmail(t *testing.T) {
	recorder := serve(newTestHandler(t, digest), "/")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got '%s'", ct)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "OpenAI releases new model") {
		t.Error("Expected email to contain the item title")
	}
	if !strings.Contains(body, "January 16, 2024") {
		t.Error("Expected email to contain the display date")
	}
}

func TestGetMarkdown(t *testing.T) {
	recorder := serve(newTestHandler(t, digest), "/markdown")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if recorder.Body.String() != digest {
		t.Error("Expected raw markdown to be returned unchanged")
	}
}

func TestGetItems(t *testing.T) {
	recorder := serve(newTestHandler(t, digest), "/items")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if recorder.Header().Get("X-Digest-Items") != "1" {
		t.Errorf("Expected X-Digest-Items 1, got '%s'", recorder.Header().Get("X-Digest-Items"))
	}

	var response struct {
		Count int `json:"count"`
		Items []struct {
			Title         string   `json:"title"`
			URL           string   `json:"url"`
			Organizations []string `json:"organizations"`
		} `json:"items"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Count != 1 || len(response.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", response.Count)
	}
	if response.Items[0].URL != "https://example.com/openai" {
		t.Errorf("Expected URL 'https://example.com/openai', got '%s'", response.Items[0].URL)
	}
}

func TestMissingDigest(t *testing.T) {
	handler := newTestHandler(t, "")

	for _, path := range []string{"/", "/markdown", "/items"} {
		if recorder := serve(handler, path); recorder.Code != http.StatusNotFound {
			t.Errorf("Expected status 404 for %s, got %d", path, recorder.Code)
		}
	}

	recorder := serve(handler, "/health")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected health to succeed, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "file_error") {
		t.Error("Expected health to report the missing file")
	}
}

func TestGetHealth(t *testing.T) {
	recorder := serve(newTestHandler(t, digest), "/health")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var health map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &health); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if health["version"] != "test" {
		t.Errorf("Expected version 'test', got '%v'", health["version"])
	}
	if _, ok := health["file_updated_at"]; !ok {
		t.Error("Expected file_updated_at in health response")
	}
}

func TestFavicon(t *testing.T) {
	recorder := serve(newTestHandler(t, digest), "/favicon.ico")
	if recorder.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", recorder.Code)
	}
}
