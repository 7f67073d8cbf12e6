package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jinsol-dev/contexthunt/internal/store"
	"github.com/jinsol-dev/contexthunt/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <puzzle-id> <answer>",
	Short: "Grade an answer against a stored puzzle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		puzzleID, answer := args[0], args[1]
		username, _ := cmd.Flags().GetString("user")

		log := newLogger(cmd)
		defer log.Sync()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		backend, err := newBackend(cmd, log)
		if err != nil {
			return err
		}

		var learner *store.User
		if username != "" {
			learner, err = st.Users().ByUsername(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("look up user %q: %w", username, err)
			}
		}

		verifier := verify.New(st.Puzzles(), st.Attempts(), st.Users(), backend, log)
		verdict, err := verifier.Check(cmd.Context(), verify.Input{
			PuzzleID: puzzleID,
			Answer:   answer,
			Learner:  learner,
		})
		if errors.Is(err, verify.ErrPuzzleNotFound) {
			return fmt.Errorf("puzzle %q not found", puzzleID)
		}
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}

		mark := "✗"
		if verdict.IsCorrect {
			mark = "✓"
		}
		fmt.Printf("%s  score %.1f (%s)\n", mark, verdict.Score, backend.Name())
		fmt.Println(verdict.Feedback)
		if verdict.CorrectAnswer != "" {
			fmt.Printf("모범 답안: %s\n", verdict.CorrectAnswer)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringP("user", "u", "", "Username to credit on a correct answer")
}
