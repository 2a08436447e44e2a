// Package engine orchestrates the wordlist generation pipeline.
package engine

import (
	"context"
	"time"
)

// Completer is the provider contract the engine depends on. Satisfied by
// the clients in internal/provider.
type Completer interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// ProgressReporter is called by the engine to report stage progress.
type ProgressReporter interface {
	Stage(num, total int, msg string)
	Detail(msg string)
	Warn(msg string)
}

// Request describes one generation: the seeds, the target length, and
// optional extra instructions appended to the prompt.
type Request struct {
	Seeds        []string
	Length       int
	Instructions string
}

// Result is the output of one generation.
type Result struct {
	Type         string    `json:"type"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Seeds        []string  `json:"seeds"`
	Requested    int       `json:"requested"`
	Words        []string  `json:"words"`
	Invalid      int       `json:"invalid_dropped"`
	Duplicates   int       `json:"duplicates_dropped"`
	Truncated    int       `json:"truncated"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
	DurationSecs float64   `json:"duration_secs"`
}

// Shortfall reports how many words short of the request the result is.
func (r *Result) Shortfall() int {
	if n := r.Requested - len(r.Words); n > 0 {
		return n
	}
	return 0
}

// BatchItem records the outcome for one seed set.
type BatchItem struct {
	Seeds  []string `json:"seeds"`
	Result *Result  `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// BatchSummary provides aggregate counts for a batch run.
type BatchSummary struct {
	Sets       int `json:"sets"`
	Failed     int `json:"failed"`
	TotalWords int `json:"total_words"`
}

// BatchResult maps each processed seed set to its outcome, in input order.
type BatchResult struct {
	Type         string       `json:"type"`
	Provider     string       `json:"provider"`
	Model        string       `json:"model"`
	Items        []BatchItem  `json:"items"`
	Summary      BatchSummary `json:"summary"`
	StartedAt    time.Time    `json:"started_at"`
	CompletedAt  time.Time    `json:"completed_at"`
	DurationSecs float64      `json:"duration_secs"`
}
