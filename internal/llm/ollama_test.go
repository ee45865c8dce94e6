package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Analyze_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected /api/generate, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{
			"model": "qwen2.5",
			"response": "The absurd phrase drove the override.",
			"done": true,
			"prompt_eval_count": 100,
			"eval_count": 30
		}`)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{
		Provider: "ollama",
		Model:    "qwen2.5",
		BaseURL:  server.URL,
	})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	resp, err := provider.Analyze(context.Background(), AnalyzeRequest{
		Report:  sampleReport(),
		Excerpt: "某条新闻",
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if resp.Analysis != "The absurd phrase drove the override." {
		t.Errorf("Unexpected analysis: %q", resp.Analysis)
	}
	if resp.Model != "qwen2.5" {
		t.Errorf("Expected model qwen2.5, got %q", resp.Model)
	}
	if resp.TokensUsed != 130 {
		t.Errorf("Expected 130 tokens, got %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_Analyze_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `{"error": "model not loaded"}`)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{Model: "qwen2.5", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if _, err := provider.Analyze(context.Background(), AnalyzeRequest{Report: sampleReport()}); err == nil {
		t.Error("Expected error for API failure")
	}
}

func TestOllamaProvider_Analyze_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `not json at all`)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{Model: "qwen2.5", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if _, err := provider.Analyze(context.Background(), AnalyzeRequest{Report: sampleReport()}); err == nil {
		t.Error("Expected error for malformed response")
	}
}

func TestOllamaProvider_Analyze_NoModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if _, err := provider.Analyze(context.Background(), AnalyzeRequest{Report: sampleReport()}); err == nil {
		t.Error("Expected error when no model is configured")
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			_, _ = fmt.Fprint(w, `{"models": []}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{Model: "qwen2.5", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected provider available with reachable server")
	}

	server.Close()
	if provider.IsAvailable(context.Background()) {
		t.Error("Expected provider unavailable after server shutdown")
	}
}
