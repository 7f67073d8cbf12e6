package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider constructs the configured provider wrapped with logging and
// retry. The result is a long-lived singleton; callers wire it once at
// startup and inject it everywhere.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("llm: initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → retry → logging → vendor. The deadline sits
	// outside retry so Timeout bounds the whole round trip, backoff
	// included.
	p := WithRetry(WithLogging(base, log), cfg.Retry)
	return WithTimeout(p, cfg.Timeout), nil
}

// NewEmbedder constructs the embedding client. Only the OpenAI-compatible
// endpoint is supported; Gemini/Anthropic deployments point BaseURL at an
// embedding gateway instead.
func NewEmbedder(cfg Config) (Embedder, error) {
	e, err := NewOpenAIEmbedder(cfg.OpenAI)
	if err != nil {
		return nil, err
	}
	return WithEmbedderTimeout(e, cfg.Timeout), nil
}
