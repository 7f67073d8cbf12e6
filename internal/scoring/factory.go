package scoring

import (
	"fmt"
	"os"

	"github.com/jinsol-dev/contexthunt/internal/llm"
)

// StrategyFromEnv reads the deployment's backend choice. Defaults to
// "judge", the strategy the engine ships with.
func StrategyFromEnv() string {
	if s := os.Getenv("CONTEXTHUNT_SCORER"); s != "" {
		return s
	}
	return "judge"
}

// New builds the named backend. The provider is required for "judge", the
// embedder for "embedding"; "lexical" needs neither.
func New(strategy string, provider llm.Provider, embedder llm.Embedder) (Backend, error) {
	switch strategy {
	case "lexical":
		return NewLexical(), nil
	case "embedding":
		if embedder == nil {
			return nil, fmt.Errorf("scoring: embedding strategy requires an embedder")
		}
		return NewEmbedding(embedder), nil
	case "judge":
		if provider == nil {
			return nil, fmt.Errorf("scoring: judge strategy requires an LLM provider")
		}
		return NewJudge(provider), nil
	default:
		return nil, fmt.Errorf("scoring: unknown strategy %q", strategy)
	}
}
