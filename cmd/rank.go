package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Challenge-mode rankings",
}

var rankSubmitCmd = &cobra.Command{
	Use:   "submit <nickname>",
	Short: "Submit a challenge run (only a best record sticks)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetInt("score")
		streak, _ := cmd.Flags().GetInt("streak")
		difficulty, _ := cmd.Flags().GetInt("difficulty")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entry, err := st.Rankings().Submit(cmd.Context(), args[0], score, streak, difficulty)
		if err != nil {
			return fmt.Errorf("submit ranking: %w", err)
		}
		fmt.Printf("%s: best %d points, streak %d\n", entry.Nickname, entry.Score, entry.MaxStreak)
		return nil
	},
}

var rankTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.Rankings().Top(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query rankings: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No rankings yet.")
			return nil
		}

		fmt.Printf("%-4s  %-16s  %6s  %6s  %4s\n", "#", "Nickname", "Score", "Streak", "Diff")
		fmt.Println(strings.Repeat("─", 44))
		for i, e := range entries {
			fmt.Printf("%-4d  %-16s  %6d  %6d  %4d\n", i+1, e.Nickname, e.Score, e.MaxStreak, e.Difficulty)
		}
		return nil
	},
}

func init() {
	rankSubmitCmd.Flags().Int("score", 0, "Run score")
	rankSubmitCmd.Flags().Int("streak", 0, "Longest correct streak in the run")
	rankSubmitCmd.Flags().Int("difficulty", 1, "Difficulty the run was played at")

	rankTopCmd.Flags().IntP("limit", "n", 10, "Number of entries to show")

	rankCmd.AddCommand(rankSubmitCmd)
	rankCmd.AddCommand(rankTopCmd)
}
