package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fkhayef/splitledger/internal/database"
)

func migrateCmd(opts *options) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if down {
				if err := database.MigrateDown(opts.cfg.DBDriver, opts.cfg.DSN()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
				return nil
			}

			if err := database.Migrate(opts.cfg.DBDriver, opts.cfg.DSN()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back every migration instead")
	return cmd
}
