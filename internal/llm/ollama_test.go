package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		var req ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-oss:120b" {
			t.Fatalf("unexpected model: %s", req.Model)
		}
		if !req.Stream {
			t.Fatalf("expected stream request")
		}
		w.Header().Set("Content-Type", "application/x-ndjson")
		chunks := []string{
			`{"model":"gpt-oss:120b","message":{"role":"assistant","content":"All "},"done":false}`,
			`{"model":"gpt-oss:120b","message":{"role":"assistant","content":"done!"},"done":false}`,
			`{"model":"gpt-oss:120b","message":{"role":"assistant","content":""},"done":true,"done_reason":"stop"}`,
		}
		for _, chunk := range chunks {
			_, _ = w.Write([]byte(chunk + "\n"))
		}
	}))
	defer server.Close()

	client, err := NewOllamaClient(OllamaConfig{
		BaseURL: server.URL,
		Token:   "token",
		Model:   "gpt-oss:120b",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	resp, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Content != "All done!" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
	if resp.FinishReason != "stop" {
		t.Fatalf("unexpected finish reason: %q", resp.FinishReason)
	}
	if resp.Model != "gpt-oss:120b" {
		t.Fatalf("unexpected model: %q", resp.Model)
	}
}

func TestOllamaChatNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"ok"},"done":true,"done_reason":"stop"}` + "\n"))
	}))
	defer server.Close()

	client, err := NewOllamaClient(OllamaConfig{BaseURL: server.URL, Model: "m"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	resp, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Content != "ok" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
}

func TestOllamaChatErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	client, err := NewOllamaClient(OllamaConfig{BaseURL: server.URL, Token: "bad", Model: "m"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOllamaChatStreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"model not found"}` + "\n"))
	}))
	defer server.Close()

	client, err := NewOllamaClient(OllamaConfig{BaseURL: server.URL, Model: "m"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewOllamaClientValidation(t *testing.T) {
	if _, err := NewOllamaClient(OllamaConfig{Model: "m"}); err == nil {
		t.Fatalf("expected error for missing base url")
	}
	if _, err := NewOllamaClient(OllamaConfig{BaseURL: "http://localhost"}); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
