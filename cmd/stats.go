package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-puzzle attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		puzzles, err := st.Puzzles().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("list puzzles: %w", err)
		}
		if len(puzzles) == 0 {
			fmt.Println("No puzzles stored yet.")
			return nil
		}

		fmt.Printf("%-12s  %-10s  %-4s  %8s  %7s  %8s\n",
			"ID", "Category", "Diff", "Attempts", "Correct", "Success")
		fmt.Println(strings.Repeat("─", 60))

		var attempts, correct int
		for _, p := range puzzles {
			if category != "" && p.Category != category {
				continue
			}
			fmt.Printf("%-12s  %-10s  %-4d  %8d  %7d  %7.1f%%\n",
				p.ID, p.Category, p.Difficulty, p.TotalAttempts, p.CorrectCount, p.SuccessRate())
			attempts += p.TotalAttempts
			correct += p.CorrectCount
		}

		fmt.Println(strings.Repeat("─", 60))
		rate := 0.0
		if attempts > 0 {
			rate = float64(correct) / float64(attempts) * 100
		}
		fmt.Printf("%-12s  %-10s  %-4s  %8d  %7d  %7.1f%%\n", "TOTAL", "", "", attempts, correct, rate)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("category", "c", "", "Filter by category")
}
