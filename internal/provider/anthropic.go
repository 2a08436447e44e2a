package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/wordforge/wordforge/pkg/models"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	anthropicMaxBody = 1 * 1024 * 1024 // 1MB

	// The model's output is advisory; the validators are the ground truth,
	// so a generic system prompt is enough.
	systemPrompt = "You are a helpful assistant that generates wordlists for security testing."

	completionTemperature = 0.7
)

// anthropicClient talks to the Anthropic Messages API directly. There is
// no SDK dependency; the wire format is small enough to hand-roll.
type anthropicClient struct {
	http    *http.Client
	apiKey  string
	model   string
	baseURL string
}

func newAnthropicClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: %w (set ANTHROPIC_API_KEY)", ErrMissingAPIKey)
	}
	model := cfg.Model
	if model == "" {
		model = models.Default("anthropic")
	}
	return &anthropicClient{
		http:    &http.Client{Timeout: cfg.timeout()},
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: anthropicBaseURL,
	}, nil
}

func (a *anthropicClient) Name() string  { return "anthropic" }
func (a *anthropicClient) Model() string { return a.model }

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (a *anthropicClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload := anthropicRequest{
		Model:       a.model,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: completionTemperature,
		System:      systemPrompt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", Permanent(fmt.Errorf("anthropic: encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", Permanent(fmt.Errorf("anthropic: build request: %w", err))
	}
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.http.Do(req)
	if err != nil {
		// Transport and timeout errors are retryable.
		return "", fmt.Errorf("anthropic: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, anthropicMaxBody))
	if err != nil {
		return "", fmt.Errorf("anthropic: read body: %w", err)
	}

	if err := classifyAnthropicStatus(resp, respBody); err != nil {
		return "", err
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", Permanent(fmt.Errorf("anthropic: invalid JSON response: %w", err))
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", Permanent(fmt.Errorf("anthropic: no text content in response"))
	}
	return parsed.Content[0].Text, nil
}

func classifyAnthropicStatus(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return Permanent(fmt.Errorf("anthropic: invalid API key"))
	case resp.StatusCode == http.StatusForbidden:
		return Permanent(fmt.Errorf("anthropic: access forbidden, check API key permissions"))
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{Provider: "anthropic", RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode == http.StatusBadRequest:
		return Permanent(fmt.Errorf("anthropic: bad request: %s", apiErrorMessage(body)))
	case resp.StatusCode == http.StatusNotFound:
		return Permanent(fmt.Errorf("anthropic: not found: %s", apiErrorMessage(body)))
	case resp.StatusCode >= 500:
		return fmt.Errorf("anthropic: server error %d", resp.StatusCode)
	default:
		return Permanent(fmt.Errorf("anthropic: unexpected status %d", resp.StatusCode))
	}
}

func apiErrorMessage(body []byte) string {
	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	const max = 200
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
