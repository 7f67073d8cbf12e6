package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the external capability clients.
type Config struct {
	// Provider picks the generative backend: "openai", "anthropic",
	// "gemini" or "mock". "openai" also covers Groq, OpenRouter and any
	// other OpenAI-compatible gateway via BaseURL.
	Provider string

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig

	Retry RetryConfig

	// Timeout bounds a single external round trip including retries.
	Timeout time.Duration
}

// OpenAIConfig configures the OpenAI-compatible client. BaseURL empty means
// api.openai.com; set it for Groq and friends.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	EmbedModel string
}

// AnthropicConfig configures the Anthropic client.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig configures the Gemini client.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model:      "gpt-4o-mini",
			EmbedModel: "text-embedding-3-small",
		},
		Anthropic: AnthropicConfig{Model: "claude-haiku-4-5-20251001"},
		Gemini:    GeminiConfig{Model: "gemini-2.0-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads CONTEXTHUNT_* variables on top of the defaults. The
// AI_API_KEY / AI_BASE_URL / AI_MODEL_NAME names are also honored for
// drop-in compatibility with existing deployments.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := os.Getenv(k); v != "" {
				*dst = v
				return
			}
		}
	}

	setenv(&cfg.Provider, "CONTEXTHUNT_LLM_PROVIDER")
	setenv(&cfg.OpenAI.APIKey, "CONTEXTHUNT_OPENAI_API_KEY", "AI_API_KEY")
	setenv(&cfg.OpenAI.BaseURL, "CONTEXTHUNT_OPENAI_BASE_URL", "AI_BASE_URL")
	setenv(&cfg.OpenAI.Model, "CONTEXTHUNT_OPENAI_MODEL", "AI_MODEL_NAME")
	setenv(&cfg.OpenAI.EmbedModel, "CONTEXTHUNT_EMBED_MODEL")
	setenv(&cfg.Anthropic.APIKey, "CONTEXTHUNT_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "CONTEXTHUNT_ANTHROPIC_MODEL")
	setenv(&cfg.Gemini.APIKey, "CONTEXTHUNT_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "CONTEXTHUNT_GEMINI_MODEL")

	if v := os.Getenv("CONTEXTHUNT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("llm: CONTEXTHUNT_OPENAI_API_KEY (or AI_API_KEY) is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("llm: CONTEXTHUNT_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("llm: CONTEXTHUNT_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
	default:
		return fmt.Errorf("llm: unknown provider %q", c.Provider)
	}
	return nil
}
