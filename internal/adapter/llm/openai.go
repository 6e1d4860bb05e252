// Package llm talks to OpenAI-compatible chat completion APIs in JSON mode.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/Temutjin2k/lapla/internal/domain/types"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
	Temperature       float64
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat completion failed: status=%d: %v", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

type Client struct {
	cfg     Config
	api     *openai.Client
	limiter *rate.Limiter
}

func New(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		cfg:     cfg,
		api:     openai.NewClientWithConfig(apiCfg),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// CompleteJSON sends a system and user message and returns the assistant's JSON object text.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	if !c.Configured() {
		return "", types.ErrMissingCredential
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: float32(c.cfg.Temperature),
	})
	if err != nil {
		if code := statusCode(err); code != 0 {
			return "", &StatusError{StatusCode: code, Err: err}
		}
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.Join(types.ErrMalformedInsights, errors.New("no choices in response"))
	}

	return resp.Choices[0].Message.Content, nil
}

// statusCode extracts the HTTP status from the client's error types, 0 for transport errors.
func statusCode(err error) int {
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
