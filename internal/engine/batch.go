package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// BatchOptions controls batch processing.
type BatchOptions struct {
	// StopOnError aborts the batch on the first failed seed set instead
	// of recording it and continuing.
	StopOnError bool

	// Sink receives each successful item as soon as it completes, so the
	// caller can flush partial progress. A sink error aborts the batch.
	Sink func(item BatchItem) error
}

// RunBatch processes seed sets sequentially, isolating per-set failures.
// Each set runs the full pipeline with the batch's shared parameters; the
// returned BatchResult preserves input order. On cancellation or
// stop-on-error the partial result is returned alongside the error.
func (g *Generator) RunBatch(ctx context.Context, sets [][]string, req Request, opts BatchOptions) (*BatchResult, error) {
	progress := g.progress()
	batch := &BatchResult{
		Type:      g.Type.Name,
		Provider:  g.Client.Name(),
		Model:     g.Client.Model(),
		StartedAt: time.Now(),
	}

	// Per-set stage output would drown the batch progress.
	inner := &Generator{Type: g.Type, Client: g.Client}

	for i, seeds := range sets {
		if err := ctx.Err(); err != nil {
			g.finishBatch(batch)
			return batch, err
		}

		progress.Stage(i+1, len(sets), fmt.Sprintf("Seeds: %s", strings.Join(seeds, ", ")))

		setReq := Request{Seeds: seeds, Length: req.Length, Instructions: req.Instructions}
		result, err := inner.Run(ctx, setReq)
		if err != nil {
			progress.Warn(fmt.Sprintf("Seed set %d failed: %s", i+1, err))
			batch.Items = append(batch.Items, BatchItem{Seeds: seeds, Error: err.Error()})
			if opts.StopOnError {
				g.finishBatch(batch)
				return batch, fmt.Errorf("seed set %d failed: %w", i+1, err)
			}
			if ctx.Err() != nil {
				g.finishBatch(batch)
				return batch, ctx.Err()
			}
			continue
		}

		item := BatchItem{Seeds: seeds, Result: result}
		batch.Items = append(batch.Items, item)
		progress.Detail(fmt.Sprintf("Generated %d words", len(result.Words)))

		if opts.Sink != nil {
			if err := opts.Sink(item); err != nil {
				g.finishBatch(batch)
				return batch, fmt.Errorf("writing results for seed set %d: %w", i+1, err)
			}
		}
	}

	g.finishBatch(batch)
	return batch, nil
}

func (g *Generator) finishBatch(batch *BatchResult) {
	summary := BatchSummary{Sets: len(batch.Items)}
	for _, item := range batch.Items {
		if item.Error != "" {
			summary.Failed++
			continue
		}
		summary.TotalWords += len(item.Result.Words)
	}
	batch.Summary = summary
	batch.CompletedAt = time.Now()
	batch.DurationSecs = batch.CompletedAt.Sub(batch.StartedAt).Seconds()
}
