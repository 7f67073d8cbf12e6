package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// timeoutProvider bounds each Complete call, retries included, with a
// deadline. A stalled vendor degrades to an unavailable error instead of
// hanging the caller.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline. A non-positive
// timeout returns the provider unwrapped.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: timeout}
}

func (t *timeoutProvider) Complete(parent context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(parent, t.timeout)
	defer cancel()

	resp, err := t.inner.Complete(ctx, req)
	return resp, t.classify(parent, err)
}

func (t *timeoutProvider) ModelID() string { return t.inner.ModelID() }

// classify maps the decorator's own expired deadline onto ErrUnavailable.
// Cancellation or deadlines coming from the caller pass through untouched.
func (t *timeoutProvider) classify(parent context.Context, err error) error {
	if err == nil || parent.Err() != nil || !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &ErrUnavailable{Err: fmt.Errorf("no response within %s: %w", t.timeout, err)}
}

// timeoutEmbedder is the same deadline bound for Embed calls.
type timeoutEmbedder struct {
	inner   Embedder
	timeout time.Duration
}

// WithEmbedderTimeout wraps an Embedder with a per-call deadline.
func WithEmbedderTimeout(e Embedder, timeout time.Duration) Embedder {
	if timeout <= 0 {
		return e
	}
	return &timeoutEmbedder{inner: e, timeout: timeout}
}

func (t *timeoutEmbedder) Embed(parent context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(parent, t.timeout)
	defer cancel()

	vecs, err := t.inner.Embed(ctx, texts)
	if err != nil && parent.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, &ErrUnavailable{Err: fmt.Errorf("no response within %s: %w", t.timeout, err)}
	}
	return vecs, err
}
