package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/matthewmueller/lmtranslate"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// APIKey is sent as the bearer token. Local servers ignore it but the client
// requires a non-empty value.
const APIKey = "lm-studio"

// Endpoint returns the versioned API root for a server's base URL
func Endpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/v1"
}

// Option configures a Client
type Option func(*config)

type config struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// New creates a client bound to an OpenAI-compatible server. The base URL is
// not validated, a malformed URL fails when a request is made.
func New(log *slog.Logger, baseURL string, options ...Option) *Client {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}
	endpoint := Endpoint(baseURL)
	opts := []option.RequestOption{
		option.WithBaseURL(endpoint),
		option.WithAPIKey(APIKey),
		// One request per invocation, failures are reported immediately
		option.WithMaxRetries(0),
	}
	if cfg.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.httpClient))
	}
	oc := openai.NewClient(opts...)
	return &Client{&oc, log, endpoint}
}

// Client implements the lmtranslate.Provider interface for OpenAI-compatible
// servers
type Client struct {
	oc       *openai.Client
	log      *slog.Logger
	endpoint string
}

var _ lmtranslate.Provider = (*Client)(nil)

// Endpoint returns the API root requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Chat sends a single, non-streaming chat completion request
func (c *Client) Chat(ctx context.Context, req *lmtranslate.ChatRequest) (*lmtranslate.ChatResponse, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("openai: required model is empty")
	}

	// Convert messages
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "user":
			messages = append(messages, openai.UserMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		default:
			return nil, fmt.Errorf("openai: unsupported message role %q", m.Role)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}

	c.log.Debug("openai: creating chat completion", "endpoint", c.endpoint, "model", req.Model)
	completion, err := c.oc.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: chat: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai: chat: %w: no choices", lmtranslate.ErrMalformedResponse)
	}
	message := completion.Choices[0].Message
	if !message.JSON.Content.Valid() {
		return nil, fmt.Errorf("openai: chat: %w: message has no content", lmtranslate.ErrMalformedResponse)
	}

	return &lmtranslate.ChatResponse{
		Role:    string(message.Role),
		Content: message.Content,
	}, nil
}
