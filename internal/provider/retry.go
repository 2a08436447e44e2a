package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryPolicy bounds the retry loop around a client. The zero value gets
// the defaults below.
type RetryPolicy struct {
	MaxAttempts int           // total attempts, including the first
	BaseDelay   time.Duration // first backoff delay, doubled per attempt
	MaxWait     time.Duration // cumulative wait budget across all backoffs

	// Sleep is injectable for tests. Defaults to a context-aware wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
	defaultMaxWait     = 60 * time.Second
)

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}
	if p.MaxWait <= 0 {
		p.MaxWait = defaultMaxWait
	}
	if p.Sleep == nil {
		p.Sleep = sleepContext
	}
	return p
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// WithRetry wraps a client with bounded exponential backoff. Permanent
// errors fail immediately; rate limits honor the server's Retry-After when
// it fits the remaining wait budget.
func WithRetry(next Client, policy RetryPolicy) Client {
	return &retrying{next: next, policy: policy.withDefaults()}
}

type retrying struct {
	next   Client
	policy RetryPolicy
}

func (r *retrying) Name() string  { return r.next.Name() }
func (r *retrying) Model() string { return r.next.Model() }

func (r *retrying) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	var (
		last     error
		waited   time.Duration
		delay    = r.policy.BaseDelay
		attempts int
	)

	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		text, err := r.next.Complete(ctx, prompt, maxTokens)
		attempts = attempt
		if err == nil {
			return text, nil
		}

		var perm *PermanentError
		if errors.As(err, &perm) {
			return "", err
		}
		last = err

		if attempt == r.policy.MaxAttempts {
			break
		}

		wait := delay
		var rl *RateLimitError
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			wait = rl.RetryAfter
		}
		if waited+wait > r.policy.MaxWait {
			break
		}
		if err := r.policy.Sleep(ctx, wait); err != nil {
			return "", err
		}
		waited += wait
		delay *= 2
	}

	return "", fmt.Errorf("%s %w after %d attempts: %w", r.next.Name(), ErrUnavailable, attempts, last)
}
