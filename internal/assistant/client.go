// Package assistant provides the chat collaborator: an OpenAI-compatible
// client plus the display-timing agent that turns model replies into sparse
// parameter updates for the consistency engine.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotConfigured indicates the assistant endpoint or API key is missing.
// The service stays up without it; only the analyze surface is unavailable.
var ErrNotConfigured = errors.New("assistant: not configured")

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type payload struct {
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Model       string    `json:"model,omitempty"`
}

type apiResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithModel overrides the default model name.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) ClientOption {
	return func(c *Client) { c.temperature = t }
}

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	http        *http.Client
}

// NewClient creates a chat client for the given endpoint and key.
func NewClient(endpoint, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:    endpoint,
		apiKey:      apiKey,
		model:       "gpt-4o-mini",
		temperature: 0.7,
		maxTokens:   800,
		http:        &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Configured reports whether the client has both an endpoint and a key.
func (c *Client) Configured() bool {
	return c != nil && c.endpoint != "" && c.apiKey != ""
}

// Chat sends a chat-completion request and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body := payload{
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Model:       c.model,
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("assistant: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("assistant: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Debug().Str("endpoint", c.endpoint).Int("bytes", len(jsonData)).Msg("assistant request")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("assistant: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant: API %s: %s", resp.Status, string(respBody))
	}

	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("assistant: unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("assistant: empty response (no choices)")
	}
	return result.Choices[0].Message.Content, nil
}
