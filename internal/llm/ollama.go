package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type OllamaConfig struct {
	BaseURL    string
	Token      string
	Model      string
	HTTPClient *http.Client
}

// OllamaClient talks to the Ollama chat API. The token is optional for
// local daemons; hosted endpoints take it as a bearer credential.
type OllamaClient struct {
	baseURL    string
	token      string
	model      string
	httpClient *http.Client
}

func NewOllamaClient(cfg OllamaConfig) (*OllamaClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("ollama base url is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("ollama model is required")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &OllamaClient{
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		model:      model,
		httpClient: client,
	}, nil
}

// Chat streams the response internally (the API sends NDJSON chunks)
// and returns the accumulated text.
func (c *OllamaClient) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	payload := ollamaChatRequest{
		Model:    c.resolveModel(req.Model),
		Messages: req.Messages,
		Stream:   true,
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("marshal request: %w", err)
	}
	endpoint := strings.TrimRight(c.baseURL, "/") + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return ChatResponse{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("ollama request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return ChatResponse{}, readOllamaError(httpResp.Body, httpResp.StatusCode)
	}

	var content strings.Builder
	var finishReason string
	var model string

	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var chunk ollamaChatChunk
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			return ChatResponse{}, fmt.Errorf("decode stream chunk: %w", err)
		}
		if chunk.Error != "" {
			return ChatResponse{}, fmt.Errorf("ollama error: %s", chunk.Error)
		}
		if chunk.Model != "" {
			model = chunk.Model
		}
		content.WriteString(chunk.Message.Content)
		if chunk.Done {
			finishReason = chunk.DoneReason
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return ChatResponse{}, fmt.Errorf("read stream: %w", err)
	}
	return ChatResponse{
		Content:      content.String(),
		Model:        model,
		FinishReason: finishReason,
	}, nil
}

func (c *OllamaClient) resolveModel(override string) string {
	if strings.TrimSpace(override) == "" {
		return c.model
	}
	return override
}

func readOllamaError(body io.Reader, status int) error {
	var chunk ollamaChatChunk
	_ = json.NewDecoder(body).Decode(&chunk)
	if chunk.Error != "" {
		return fmt.Errorf("ollama request failed: %s (status %d)", chunk.Error, status)
	}
	return fmt.Errorf("ollama request failed with status %d", status)
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaChatChunk struct {
	Model      string  `json:"model"`
	Message    Message `json:"message"`
	Done       bool    `json:"done"`
	DoneReason string  `json:"done_reason"`
	Error      string  `json:"error"`
}
