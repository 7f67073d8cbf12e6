package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jinsol-dev/contexthunt/internal/engine"
	"github.com/jinsol-dev/contexthunt/internal/llm"
	"github.com/jinsol-dev/contexthunt/internal/puzzlegen"
	"github.com/jinsol-dev/contexthunt/internal/wordbank"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Generate puzzles into the local pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		if difficulty < 1 || difficulty > 5 {
			return fmt.Errorf("difficulty %d out of range 1-5", difficulty)
		}
		if count < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		bank := wordbank.New()
		if !bank.Known(category) {
			return fmt.Errorf("unknown category %q (known: %v)", category, wordbank.Categories())
		}

		log := newLogger(cmd)
		defer log.Sync()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		provider, err := llm.NewProvider(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		gen := puzzlegen.New(provider, bank, puzzlegen.DefaultConfig(), log)
		eng := engine.New(st, gen, nil, log)

		report, err := eng.Fill(cmd.Context(), category, difficulty, count)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}

		for _, p := range report.Puzzles {
			fmt.Printf("%s  [%s/%d]  %s\n", p.ID, p.Category, p.Difficulty, p.EncodedText)
		}
		fmt.Printf("\n%d requested, %d created, %d skipped\n",
			report.Requested, report.Created, report.Skipped)
		return nil
	},
}

func init() {
	fillCmd.Flags().StringP("category", "c", wordbank.CategorySociety, "Puzzle category")
	fillCmd.Flags().IntP("difficulty", "d", 2, "Difficulty 1-5")
	fillCmd.Flags().IntP("count", "n", 5, "Number of puzzles to generate")
}
