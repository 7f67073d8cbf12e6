package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage learners",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Register a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := st.Users().Create(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		fmt.Printf("Registered %s (id %d).\n", *user.Username, user.ID)
		return nil
	},
}

var userGuestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Create a throwaway guest learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := st.Users().CreateGuest(cmd.Context())
		if err != nil {
			return fmt.Errorf("create guest: %w", err)
		}
		fmt.Printf("Guest %s (id %d). Guests never accrue solved credit.\n", *user.Username, user.ID)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userGuestCmd)
}
