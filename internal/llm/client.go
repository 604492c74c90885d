// Package llm implements the external text-generation collaborator on top of
// an OpenAI-compatible chat-completions API. OpenRouter is the default
// endpoint; plain OpenAI works by pointing BaseURL at it.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/readmekit/readmekit/internal/core"
)

// Config holds the connection settings for the completion endpoint.
type Config struct {
	APIKey  string
	BaseURL string

	// Referer and AppTitle populate the HTTP-Referer and X-Title headers
	// OpenRouter uses for app attribution. Ignored by other endpoints.
	Referer  string
	AppTitle string
}

// Client is a core.Completer backed by a chat-completions API.
type Client struct {
	api    *openai.Client
	logger *slog.Logger
}

// NewClient builds a completion client. Remote generation can take a while,
// so the HTTP client gets generous timeouts.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	apiCfg.HTTPClient = &http.Client{
		Transport: &attributionTransport{
			referer: cfg.Referer,
			title:   cfg.AppTitle,
			base: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxConnsPerHost:     10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		Timeout: 5 * time.Minute,
	}

	return &Client{api: openai.NewClientWithConfig(apiCfg), logger: logger}
}

// Complete sends one prompt as a single user message and returns the model's
// text. Non-2xx responses and transport failures surface as
// *core.RemoteError; the call is never retried here.
func (c *Client) Complete(ctx context.Context, prompt string, opts core.ModelOptions) (string, error) {
	c.logger.Debug("sending completion request", "model", opts.Model, "max_tokens", opts.MaxTokens)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &core.RemoteError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		return "", &core.RemoteError{Body: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return "", &core.RemoteError{Body: "completion response contained no choices"}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &core.RemoteError{Body: "completion response was empty"}
	}

	c.logger.Debug("received completion", "model", resp.Model, "bytes", len(content))
	return content, nil
}

// attributionTransport injects OpenRouter's attribution headers into every
// request.
type attributionTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("completion transport: %w", err)
	}
	return resp, nil
}
