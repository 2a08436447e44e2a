package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// seedKeyedCompleter returns canned responses keyed by the first seed in
// the prompt, failing for seeds listed in failOn.
type seedKeyedCompleter struct {
	failOn map[string]error
	calls  int
}

func (s *seedKeyedCompleter) Name() string  { return "mock" }
func (s *seedKeyedCompleter) Model() string { return "mock-model" }

func (s *seedKeyedCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	s.calls++
	for seed, err := range s.failOn {
		if strings.Contains(prompt, seed) {
			return "", err
		}
	}
	return "alpha\nbeta\ngamma\n", nil
}

func batchGenerator(t *testing.T, client Completer) *Generator {
	t.Helper()
	return &Generator{Type: mustType(t, "password"), Client: client}
}

func TestRunBatch_AllSucceed(t *testing.T) {
	g := batchGenerator(t, &seedKeyedCompleter{})
	sets := [][]string{{"one"}, {"two"}, {"three"}}

	batch, err := g.RunBatch(context.Background(), sets, Request{Length: 3}, BatchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(batch.Items))
	}
	if batch.Summary.Sets != 3 || batch.Summary.Failed != 0 || batch.Summary.TotalWords != 9 {
		t.Errorf("summary = %+v", batch.Summary)
	}
	for i, item := range batch.Items {
		if item.Seeds[0] != sets[i][0] {
			t.Errorf("items[%d] out of order: %v", i, item.Seeds)
		}
		if item.Result == nil || item.Error != "" {
			t.Errorf("items[%d] not successful: %+v", i, item)
		}
	}
}

func TestRunBatch_FailureIsolation(t *testing.T) {
	// One set always fails non-transiently; the rest must be unaffected.
	client := &seedKeyedCompleter{failOn: map[string]error{
		"badseed": fmt.Errorf("mock: invalid API key"),
	}}
	g := batchGenerator(t, client)
	sets := [][]string{{"one"}, {"badseed"}, {"three"}, {"four"}}

	batch, err := g.RunBatch(context.Background(), sets, Request{Length: 3}, BatchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Summary.Sets != 4 || batch.Summary.Failed != 1 {
		t.Fatalf("summary = %+v", batch.Summary)
	}
	if batch.Items[1].Error == "" || batch.Items[1].Result != nil {
		t.Errorf("failed item not recorded: %+v", batch.Items[1])
	}
	for _, i := range []int{0, 2, 3} {
		if batch.Items[i].Result == nil {
			t.Errorf("items[%d] should have succeeded", i)
		}
		if len(batch.Items[i].Result.Words) != 3 {
			t.Errorf("items[%d] words = %v", i, batch.Items[i].Result.Words)
		}
	}
}

func TestRunBatch_StopOnError(t *testing.T) {
	client := &seedKeyedCompleter{failOn: map[string]error{
		"badseed": fmt.Errorf("mock: invalid API key"),
	}}
	g := batchGenerator(t, client)
	sets := [][]string{{"one"}, {"badseed"}, {"three"}}

	batch, err := g.RunBatch(context.Background(), sets, Request{Length: 3}, BatchOptions{StopOnError: true})
	if err == nil {
		t.Fatal("expected error with StopOnError")
	}
	if len(batch.Items) != 2 {
		t.Fatalf("items = %d, want 2 (stopped at failure)", len(batch.Items))
	}
	if batch.Items[0].Result == nil {
		t.Error("first item should have succeeded")
	}
}

func TestRunBatch_SinkFlushPerSet(t *testing.T) {
	g := batchGenerator(t, &seedKeyedCompleter{})
	sets := [][]string{{"one"}, {"two"}}

	var flushed [][]string
	_, err := g.RunBatch(context.Background(), sets, Request{Length: 2}, BatchOptions{
		Sink: func(item BatchItem) error {
			flushed = append(flushed, item.Result.Words)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flushed) != 2 {
		t.Errorf("sink called %d times, want 2", len(flushed))
	}
}

func TestRunBatch_SinkErrorAborts(t *testing.T) {
	g := batchGenerator(t, &seedKeyedCompleter{})
	sets := [][]string{{"one"}, {"two"}, {"three"}}

	calls := 0
	_, err := g.RunBatch(context.Background(), sets, Request{Length: 2}, BatchOptions{
		Sink: func(item BatchItem) error {
			calls++
			return fmt.Errorf("disk full")
		},
	})
	if err == nil {
		t.Fatal("expected sink error to abort batch")
	}
	if calls != 1 {
		t.Errorf("sink called %d times, want 1", calls)
	}
}

func TestRunBatch_CancellationReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &seedKeyedCompleter{}
	g := batchGenerator(t, client)
	sets := [][]string{{"one"}, {"two"}, {"three"}}

	done := 0
	batch, err := g.RunBatch(ctx, sets, Request{Length: 2}, BatchOptions{
		Sink: func(item BatchItem) error {
			done++
			if done == 1 {
				cancel()
			}
			return nil
		},
	})
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	// The completed set survives cancellation.
	if len(batch.Items) != 1 || batch.Items[0].Result == nil {
		t.Errorf("partial batch = %+v", batch.Items)
	}
}

func TestRunBatch_EmptyInput(t *testing.T) {
	g := batchGenerator(t, &seedKeyedCompleter{})
	batch, err := g.RunBatch(context.Background(), nil, Request{Length: 2}, BatchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Summary.Sets != 0 {
		t.Errorf("summary = %+v", batch.Summary)
	}
}
