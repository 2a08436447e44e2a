package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wordforge/wordforge/internal/wordlist"
)

// Generator runs the generation pipeline for one wordlist type against
// one provider client.
type Generator struct {
	Type     wordlist.Type
	Client   Completer
	Progress ProgressReporter
}

const totalStages = 5

// estimateMaxTokens sizes the completion budget from the prompt length
// and the requested word count.
const maxTokenBudget = 4000

func estimateMaxTokens(prompt string, count int) int {
	promptTokens := float64(len(strings.Fields(prompt))) * 1.5
	outputTokens := count * 2
	estimated := int(promptTokens) + outputTokens + 50
	if estimated > maxTokenBudget {
		return maxTokenBudget
	}
	return estimated
}

// BuildPrompt assembles the prompt for a request without calling the
// provider. Used directly by dry-run mode.
func (g *Generator) BuildPrompt(req Request) (string, error) {
	seeds := trimSeeds(req.Seeds)
	if len(seeds) == 0 {
		return "", fmt.Errorf("no seed words provided")
	}
	if req.Length < 1 {
		return "", fmt.Errorf("wordlist length must be positive, got %d", req.Length)
	}

	prompt := g.Type.Prompt(seeds, req.Length)
	if req.Instructions != "" {
		prompt += "\n\nAdditional instructions: " + req.Instructions
	}
	return prompt, nil
}

// Run executes the full pipeline: build prompt, await completion, parse,
// validate, size.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	progress := g.progress()
	result := &Result{
		Type:      g.Type.Name,
		Provider:  g.Client.Name(),
		Model:     g.Client.Model(),
		Seeds:     trimSeeds(req.Seeds),
		Requested: req.Length,
		StartedAt: time.Now(),
	}

	progress.Stage(1, totalStages, "Building prompt...")
	prompt, err := g.BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	progress.Stage(2, totalStages, fmt.Sprintf("Awaiting completion from %s (%s)...", result.Provider, result.Model))
	raw, err := g.Client.Complete(ctx, prompt, estimateMaxTokens(prompt, req.Length))
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	progress.Stage(3, totalStages, "Parsing response...")
	candidates := parseWords(raw)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("model returned no usable lines")
	}
	progress.Detail(fmt.Sprintf("Parsed %d candidate words", len(candidates)))

	progress.Stage(4, totalStages, "Validating candidates...")
	kept := g.validate(candidates, result)
	if len(kept) == 0 {
		return nil, fmt.Errorf("no valid words after validation (%d candidates rejected)", result.Invalid)
	}
	progress.Detail(fmt.Sprintf("%d valid unique words (%d invalid, %d duplicates)", len(kept), result.Invalid, result.Duplicates))

	progress.Stage(5, totalStages, "Sizing output...")
	if len(kept) > req.Length {
		result.Truncated = len(kept) - req.Length
		kept = kept[:req.Length]
	}
	result.Words = kept

	if short := result.Shortfall(); short > 0 {
		progress.Warn(fmt.Sprintf("Produced %d of %d requested words", len(result.Words), req.Length))
	}

	result.CompletedAt = time.Now()
	result.DurationSecs = result.CompletedAt.Sub(result.StartedAt).Seconds()
	return result, nil
}

// parseWords splits a raw completion into candidate words. The model's
// formatting is advisory, so the parser drops anything that looks like
// prose or markup rather than a word.
func parseWords(raw string) []string {
	var words []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		if strings.ContainsAny(word, ":()[]") || strings.Contains(word, "->") {
			continue
		}
		// A line with a space but no hyphen is prose, not a word.
		if strings.Contains(word, " ") && !strings.Contains(word, "-") {
			continue
		}
		words = append(words, word)
	}
	return words
}

// validate normalizes, deduplicates, and validates candidates, keeping
// first-seen order. Rejections are counted, never errors.
func (g *Generator) validate(candidates []string, result *Result) []string {
	seen := make(map[string]bool, len(candidates))
	var kept []string

	for _, word := range candidates {
		if g.Type.Normalize != nil {
			word = g.Type.Normalize(word)
		}
		if seen[word] {
			result.Duplicates++
			continue
		}
		if !g.Type.Validate(word) {
			result.Invalid++
			continue
		}
		seen[word] = true
		kept = append(kept, word)
	}
	return kept
}

func (g *Generator) progress() ProgressReporter {
	if g.Progress != nil {
		return g.Progress
	}
	return noopProgress{}
}

type noopProgress struct{}

func (noopProgress) Stage(num, total int, msg string) {}
func (noopProgress) Detail(msg string)                {}
func (noopProgress) Warn(msg string)                  {}

func trimSeeds(seeds []string) []string {
	var out []string
	for _, s := range seeds {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
