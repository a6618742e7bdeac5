package commands

import (
	"github.com/spf13/cobra"
)

// seed: load the demo users, groups and expenses into an empty database.
func seedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo users, groups and expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			res, err := a.Seed(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"users":    res.Users,
				"groups":   res.Groups,
				"expenses": res.Expenses,
			})
		},
	}
}
