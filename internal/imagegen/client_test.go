package imagegen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}

		if req["n"] != float64(1) {
			t.Errorf("expected n=1, got %v", req["n"])
		}
		if req["size"] != "1024x1024" {
			t.Errorf("expected 1024x1024, got %v", req["size"])
		}
		if req["quality"] != "standard" {
			t.Errorf("expected standard quality, got %v", req["quality"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"url": "https://images.example.com/out.png"},
			},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	client := NewOpenAIClientWithBaseURL(server.URL)

	url, err := client.Generate(context.Background(), "a samosa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://images.example.com/out.png" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestOpenAIClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	client := NewOpenAIClientWithBaseURL(server.URL)

	_, err := client.Generate(context.Background(), "a samosa")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestOpenAIClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"model overloaded"}`))
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	client := NewOpenAIClientWithBaseURL(server.URL)

	_, err := client.Generate(context.Background(), "a samosa")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("expected status and body in error, got %q", err.Error())
	}
}

func TestOpenAIClient_MissingImageURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	client := NewOpenAIClientWithBaseURL(server.URL)

	if _, err := client.Generate(context.Background(), "a samosa"); err == nil {
		t.Fatal("expected error for response without an image url")
	}
}

func TestOpenAIClient_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	client := NewOpenAIClient()

	if _, err := client.Generate(context.Background(), "a samosa"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
