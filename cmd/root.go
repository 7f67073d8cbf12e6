package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jinsol-dev/contexthunt/internal/llm"
	"github.com/jinsol-dev/contexthunt/internal/logging"
	"github.com/jinsol-dev/contexthunt/internal/scoring"
	"github.com/jinsol-dev/contexthunt/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "contexthunt",
	Short: "Korean vocabulary puzzle engine",
	Long:  "Contexthunt generates difficult-sentence vocabulary puzzles with an LLM and grades free-text paraphrases of them.",
}

func Execute() error {
	// Local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CONTEXTHUNT_DB env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Rotating JSON log file (console only when empty)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CONTEXTHUNT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	file, _ := cmd.Flags().GetString("log-file")
	debug, _ := cmd.Flags().GetBool("debug")
	return logging.New(logging.Options{File: file, Debug: debug})
}

// newBackend builds the scoring backend selected by CONTEXTHUNT_SCORER,
// constructing the provider or embedder only when the strategy needs one.
func newBackend(cmd *cobra.Command, log *zap.Logger) (scoring.Backend, error) {
	strategy := scoring.StrategyFromEnv()
	if strategy == "lexical" {
		return scoring.New(strategy, nil, nil)
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scorer %q needs a configured provider: %w", strategy, err)
	}

	var embedder llm.Embedder
	if strategy == "embedding" {
		var err error
		embedder, err = llm.NewEmbedder(cfg)
		if err != nil {
			return nil, fmt.Errorf("build embedder: %w", err)
		}
		return scoring.New(strategy, nil, embedder)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("build provider: %w", err)
	}
	return scoring.New(strategy, provider, embedder)
}
