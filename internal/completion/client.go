package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gentestx/internal/config"
	"gentestx/internal/domain"

	"go.uber.org/zap"
)

// Completer sends one chat request and returns the text of the first choice
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Client talks to an OpenAI-compatible chat completions endpoint.
// Every call is exactly one HTTP attempt.
type Client struct {
	apiKey      string
	endpoint    string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Client from the endpoint settings in cfg
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:      cfg.APIKey,
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

// Message is a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat completions request body
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Response is the part of the chat completions response we consume
type Response struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ErrorResponse is the error envelope returned on non-2xx responses
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the system and user prompts and returns choices[0].message.content.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", &domain.ConfigurationError{Field: "api_key", Err: domain.ErrMissingAPIKey}
	}

	body, err := json.Marshal(Request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	c.logger.Debug("sending completion request",
		zap.String("model", c.model),
		zap.Int("system_len", len(systemPrompt)),
		zap.Int("user_len", len(userPrompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.ExternalServiceError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.ExternalServiceError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.statusError(resp.StatusCode, data)
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return "", &domain.ExternalServiceError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to parse response: %v", err),
			Err:        err,
		}
	}
	if len(out.Choices) == 0 {
		return "", &domain.ExternalServiceError{StatusCode: resp.StatusCode, Message: "no completion returned"}
	}

	content := out.Choices[0].Message.Content
	c.logger.Debug("completion received",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(content)))
	return content, nil
}

func (c *Client) statusError(status int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return &domain.ExternalServiceError{StatusCode: status, Message: errResp.Error.Message}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &domain.ExternalServiceError{
		StatusCode: status,
		Message:    fmt.Sprintf("request failed with status code %d: %s", status, msg),
	}
}
