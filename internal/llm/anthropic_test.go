package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "token" {
			t.Fatalf("unexpected api key header: %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != defaultAnthropicVersion {
			t.Fatalf("unexpected version header: %q", got)
		}
		var req anthropicChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.System != "be brief" {
			t.Fatalf("system message not split out: %q", req.System)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}
		if req.MaxTokens != defaultAnthropicMaxTokens {
			t.Fatalf("unexpected max tokens: %d", req.MaxTokens)
		}
		resp := anthropicChatResponse{
			Model: "claude-test",
			Content: []anthropicContent{
				{Type: "text", Text: "hel"},
				{Type: "tool_use", Text: "ignored"},
				{Type: "text", Text: "lo"},
			},
			StopReason: "end_turn",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := NewAnthropicClient(AnthropicConfig{
		BaseURL: server.URL,
		Token:   "token",
		Model:   "claude-test",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	resp, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
		},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Content != "hello" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
	if resp.FinishReason != "end_turn" {
		t.Fatalf("unexpected finish reason: %q", resp.FinishReason)
	}
}

func TestAnthropicChatErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"forbidden","type":"permission_error"}}`))
	}))
	defer server.Close()

	client, err := NewAnthropicClient(AnthropicConfig{BaseURL: server.URL, Token: "t", Model: "m"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Chat(context.Background(), ChatRequest{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewAnthropicClientValidation(t *testing.T) {
	if _, err := NewAnthropicClient(AnthropicConfig{Token: "t", Model: "m"}); err == nil {
		t.Fatalf("expected error for missing base url")
	}
	if _, err := NewAnthropicClient(AnthropicConfig{BaseURL: "http://x", Model: "m"}); err == nil {
		t.Fatalf("expected error for missing token")
	}
	if _, err := NewAnthropicClient(AnthropicConfig{BaseURL: "http://x", Token: "t"}); err == nil {
		t.Fatalf("expected error for missing model")
	}
}

func TestSplitAnthropicMessagesNoSystem(t *testing.T) {
	messages := []Message{{Role: "user", Content: "hi"}}
	out, system := splitAnthropicMessages(messages)
	if system != "" {
		t.Fatalf("unexpected system: %q", system)
	}
	if len(out) != 1 {
		t.Fatalf("unexpected messages: %+v", out)
	}
}
