package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in proverb and idiom puzzles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		created, err := st.Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if created == 0 {
			fmt.Println("Seed puzzles already present.")
			return nil
		}
		fmt.Printf("Seeded %d puzzles.\n", created)
		return nil
	},
}
