package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"failcourse.com/internal/config"
	"github.com/sashabaranov/go-openai"
)

var (
	ErrMissingAPIKey = errors.New("ai: api key not configured")
	ErrUpstream      = errors.New("ai: upstream request failed")
	ErrEmptyReply    = errors.New("ai: reply has no choices")
)

// Completer sends one prompt and returns the assistant reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client handles all outgoing communication to the chat-completion API.
type Client struct {
	api          *openai.Client
	apiKey       string
	model        string
	temperature  float32
	maxTokens    int
	systemPrompt string
}

// NewClient creates a client against any OpenAI-compatible endpoint (OpenRouter by default).
func NewClient(cfg config.AIConfig) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = config.DefaultSystemPrompt
	}

	return &Client{
		api:          openai.NewClientWithConfig(oc),
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
		systemPrompt: systemPrompt,
	}
}

// Complete issues a single synchronous chat completion. No retry.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// StatusCode extracts the HTTP status from an upstream error, 0 when there is none.
func StatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
