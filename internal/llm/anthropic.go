package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultAnthropicVersion   = "2023-06-01"
	defaultAnthropicMaxTokens = 1024
)

type AnthropicConfig struct {
	BaseURL    string
	Token      string
	Model      string
	Version    string
	MaxTokens  int
	HTTPClient *http.Client
}

type AnthropicClient struct {
	baseURL    string
	token      string
	model      string
	version    string
	maxTokens  int
	httpClient *http.Client
}

func NewAnthropicClient(cfg AnthropicConfig) (*AnthropicClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("anthropic base url is required")
	}
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("anthropic token is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("anthropic model is required")
	}
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = defaultAnthropicVersion
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &AnthropicClient{
		baseURL:    baseURL,
		token:      token,
		model:      model,
		version:    version,
		maxTokens:  maxTokens,
		httpClient: client,
	}, nil
}

func (c *AnthropicClient) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	messages, system := splitAnthropicMessages(req.Messages)
	payload := anthropicChatRequest{
		Model:     c.resolveModel(req.Model),
		Messages:  messages,
		System:    system,
		MaxTokens: c.maxTokens,
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("marshal request: %w", err)
	}
	endpoint := buildAnthropicEndpoint(c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return ChatResponse{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.token)
	httpReq.Header.Set("anthropic-version", c.version)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("anthropic request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return ChatResponse{}, readAnthropicError(httpResp.Body, httpResp.StatusCode)
	}
	var resp anthropicChatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return ChatResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if resp.Error != nil {
		return ChatResponse{}, fmt.Errorf("anthropic error: %s", resp.Error.Message)
	}
	return ChatResponse{
		Content:      flattenAnthropicContent(resp.Content),
		Model:        resp.Model,
		FinishReason: resp.StopReason,
	}, nil
}

func (c *AnthropicClient) resolveModel(override string) string {
	if strings.TrimSpace(override) == "" {
		return c.model
	}
	return override
}

func buildAnthropicEndpoint(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	if strings.HasSuffix(base, "/v1") {
		return base + "/messages"
	}
	return base + "/v1/messages"
}

func readAnthropicError(body io.Reader, status int) error {
	var resp anthropicChatResponse
	_ = json.NewDecoder(body).Decode(&resp)
	if resp.Error != nil && resp.Error.Message != "" {
		return fmt.Errorf("anthropic request failed: %s (status %d)", resp.Error.Message, status)
	}
	return fmt.Errorf("anthropic request failed with status %d", status)
}

// splitAnthropicMessages pulls a leading system message out of the
// conversation; the messages API takes it as a separate field.
func splitAnthropicMessages(messages []Message) ([]Message, string) {
	if len(messages) == 0 || messages[0].Role != "system" {
		return messages, ""
	}
	return messages[1:], messages[0].Content
}

func flattenAnthropicContent(blocks []anthropicContent) string {
	var builder strings.Builder
	for _, block := range blocks {
		if block.Type != "text" {
			continue
		}
		builder.WriteString(block.Text)
	}
	return builder.String()
}

type anthropicChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	System    string    `json:"system,omitempty"`
	MaxTokens int       `json:"max_tokens"`
}

type anthropicChatResponse struct {
	ID         string             `json:"id"`
	Model      string             `json:"model"`
	Content    []anthropicContent `json:"content"`
	StopReason string             `json:"stop_reason"`
	Error      *anthropicError    `json:"error,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
