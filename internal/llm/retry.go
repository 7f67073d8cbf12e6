package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider retries transient failures with exponential backoff and
// jitter. Malformed output gets exactly one regeneration attempt; context
// cancellation is never retried.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	badOutputRetried := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &badOutputRetried) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func retryable(err error, badOutputRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var bad *ErrBadOutput
	if errors.As(err, &bad) {
		if *badOutputRetried {
			return false
		}
		*badOutputRetried = true
		return true
	}

	// Rate limits, outages and unclassified transport errors all get the
	// full backoff schedule.
	return true
}

func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimited
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	w := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	w = math.Min(w, float64(r.cfg.MaxWait))

	// ±20% jitter.
	w += w * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(w, 0))
}
