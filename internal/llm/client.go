package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

// Defaults for the Atoma OpenAI-compatible endpoint
const (
	DefaultBaseURL   = "https://api.atoma.network/v1/"
	DefaultModel     = "deepseek-ai/DeepSeek-R1"
	DefaultMaxTokens = 2048
)

var errNoChoices = errors.New("completion returned no choices")

// Completer sends a single-turn prompt and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config configures the chat completion client.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxTokens  int
	HTTPClient *http.Client
}

// Client calls an OpenAI-compatible chat completions endpoint. Requests are
// never retried.
type Client struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// NewClient builds a client, filling unset fields with the Atoma defaults.
func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	return &Client{
		client: openai.NewClient(
			option.WithBaseURL(cfg.BaseURL),
			option.WithAPIKey(cfg.APIKey),
			option.WithHTTPClient(cfg.HTTPClient),
			option.WithMaxRetries(0),
		),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
	}
}

// Complete sends prompt as one user message and returns the trimmed content
// of the first choice. Transport and non-2xx failures wrap domain.ErrUpstream.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %w", domain.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, errNoChoices)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
