package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/wordforge/wordforge/pkg/models"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	// OpenRouter attribution header defaults.
	defaultReferer  = "http://localhost"
	defaultAppTitle = "wordforge"
)

// openAICompatClient serves every OpenAI-compatible backend: the OpenAI
// API itself, OpenRouter, and custom endpoints. The SDK's own retries are
// disabled; the shared middleware owns retry policy.
type openAICompatClient struct {
	name  string
	model string
	opts  []option.RequestOption
}

func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ErrMissingAPIKey)
	}
	model := cfg.Model
	if model == "" {
		model = models.Default("openai")
	}
	return &openAICompatClient{
		name:  "openai",
		model: model,
		opts:  baseOptions(cfg),
	}, nil
}

func newOpenRouterClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter: %w (set OPENROUTER_API_KEY)", ErrMissingAPIKey)
	}
	model := cfg.Model
	if model == "" {
		model = models.Default("openrouter")
	}
	referer := cfg.Referer
	if referer == "" {
		referer = defaultReferer
	}
	title := cfg.AppTitle
	if title == "" {
		title = defaultAppTitle
	}
	opts := append(baseOptions(cfg),
		option.WithBaseURL(openRouterBaseURL),
		option.WithHeader("HTTP-Referer", referer),
		option.WithHeader("X-Title", title),
	)
	return &openAICompatClient{name: "openrouter", model: model, opts: opts}, nil
}

func newCustomClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("custom: %w (set CUSTOM_API_KEY)", ErrMissingAPIKey)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("custom: %w (set CUSTOM_API_URL)", ErrMissingBaseURL)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("custom: %w (pass --model)", ErrMissingModel)
	}
	opts := append(baseOptions(cfg), option.WithBaseURL(cfg.BaseURL))
	return &openAICompatClient{name: "custom", model: cfg.Model, opts: opts}, nil
}

func baseOptions(cfg Config) []option.RequestOption {
	return []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.timeout()),
	}
}

func (o *openAICompatClient) Name() string  { return o.name }
func (o *openAICompatClient) Model() string { return o.model }

func (o *openAICompatClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(completionTemperature),
	})
	if err != nil {
		return "", o.classify(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", Permanent(fmt.Errorf("%s: empty completion", o.name))
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *openAICompatClient) classify(err error) error {
	var apierr *openai.Error
	if !errors.As(err, &apierr) {
		// Transport and timeout errors are retryable.
		return fmt.Errorf("%s: %w", o.name, err)
	}
	switch {
	case apierr.StatusCode == http.StatusTooManyRequests:
		var retryAfter string
		if apierr.Response != nil {
			retryAfter = apierr.Response.Header.Get("Retry-After")
		}
		return &RateLimitError{Provider: o.name, RetryAfter: parseRetryAfter(retryAfter)}
	case apierr.StatusCode == http.StatusUnauthorized:
		return Permanent(fmt.Errorf("%s: invalid API key", o.name))
	case apierr.StatusCode == http.StatusForbidden:
		return Permanent(fmt.Errorf("%s: access forbidden, check API key permissions", o.name))
	case apierr.StatusCode == http.StatusBadRequest, apierr.StatusCode == http.StatusNotFound:
		return Permanent(fmt.Errorf("%s: %w", o.name, err))
	case apierr.StatusCode >= 500:
		return fmt.Errorf("%s: server error %d", o.name, apierr.StatusCode)
	default:
		return Permanent(fmt.Errorf("%s: %w", o.name, err))
	}
}
