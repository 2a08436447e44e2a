package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	genai "google.golang.org/genai"

	"github.com/wordforge/wordforge/pkg/models"
)

// geminiClient wraps the official genai SDK. Cross-cutting retry policy
// is applied by the shared middleware, not here.
type geminiClient struct {
	cli   *genai.Client
	model string
}

func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w (set GEMINI_API_KEY)", ErrMissingAPIKey)
	}
	model := cfg.Model
	if model == "" {
		model = models.Default("gemini")
	}
	cli, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &geminiClient{cli: cli, model: model}, nil
}

func (g *geminiClient) Name() string  { return "gemini" }
func (g *geminiClient) Model() string { return g.model }

func (g *geminiClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			MaxOutputTokens: int32(maxTokens),
			Temperature:     genai.Ptr[float32](completionTemperature),
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemPrompt}},
			},
		},
	)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", Permanent(fmt.Errorf("gemini: no content in response"))
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", Permanent(fmt.Errorf("gemini: empty completion"))
	}
	return text, nil
}

func classifyGeminiError(err error) error {
	var apierr genai.APIError
	if !errors.As(err, &apierr) {
		return fmt.Errorf("gemini: %w", err)
	}
	switch {
	case apierr.Code == http.StatusTooManyRequests:
		return &RateLimitError{Provider: "gemini"}
	case apierr.Code == http.StatusUnauthorized, apierr.Code == http.StatusForbidden:
		return Permanent(fmt.Errorf("gemini: invalid API key or permissions: %w", err))
	case apierr.Code == http.StatusBadRequest, apierr.Code == http.StatusNotFound:
		return Permanent(fmt.Errorf("gemini: %w", err))
	case apierr.Code >= 500:
		return fmt.Errorf("gemini: server error %d", apierr.Code)
	default:
		return Permanent(fmt.Errorf("gemini: %w", err))
	}
}
