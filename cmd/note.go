package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Wrong-answer notes",
}

var noteSaveCmd = &cobra.Command{
	Use:   "save <username> <puzzle-id> <answer>",
	Short: "Save a missed puzzle to the user's note list",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := st.Users().ByUsername(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("look up user %q: %w", args[0], err)
		}
		if _, err := st.Notes().Save(cmd.Context(), user.ID, args[1], args[2]); err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		fmt.Printf("Noted %s for %s.\n", args[1], args[0])
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list <username>",
	Short: "List a user's wrong-answer notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := st.Users().ByUsername(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("look up user %q: %w", args[0], err)
		}
		notes, err := st.Notes().ByUser(cmd.Context(), user.ID)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		if len(notes) == 0 {
			fmt.Println("No notes.")
			return nil
		}

		for _, n := range notes {
			puzzle, err := st.Puzzles().Get(cmd.Context(), n.PuzzleID)
			if err != nil {
				fmt.Printf("%s  (puzzle no longer available)\n", n.PuzzleID)
				continue
			}
			fmt.Printf("%s  %s\n", n.PuzzleID, puzzle.EncodedText)
			fmt.Printf("    내 답: %s\n", n.UserAnswer)
			fmt.Printf("    모범 답안: %s\n", puzzle.ModelMeaning)
		}
		return nil
	},
}

func init() {
	noteCmd.AddCommand(noteSaveCmd)
	noteCmd.AddCommand(noteListCmd)
}
