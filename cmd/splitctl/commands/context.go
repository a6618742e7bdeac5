package commands

import (
	"github.com/spf13/cobra"
)

// context [--user id]: print the chat context snapshot.
func contextCmd(opts *options) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the chat context snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			var user *int64
			if cmd.Flags().Changed("user") {
				user = &userID
			}

			snapshot, err := a.Chat.Context(cmd.Context(), user)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), snapshot)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "include the balances of this user")
	return cmd
}
