package llm

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Content      string
	Model        string
	FinishReason string
}

// Client is the native provider interface backing the standalone shims.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
