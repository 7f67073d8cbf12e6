package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type purposeKey struct{}

// WithPurpose tags the context with what this call is for ("puzzle-draft",
// "puzzle-review", "answer-judge"). The logging decorator picks it up.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}

// loggingProvider records every external call: purpose, latency, token
// usage, outcome. Logging never affects the call's result.
type loggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with structured call logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Complete(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
	}
	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
	}

	if err != nil {
		l.log.Warn("llm call failed", append(fields, zap.Error(err))...)
	} else {
		l.log.Debug("llm call completed", fields...)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }
