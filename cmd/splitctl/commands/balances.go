package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func balancesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Print net balances as JSON",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "group <id>",
			Short: "Net balances of a group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				a, err := opts.app()
				if err != nil {
					return err
				}

				balances, err := a.Balances.GroupBalances(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), balances)
			},
		},
		&cobra.Command{
			Use:   "user <id>",
			Short: "Balances involving a user, per group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				a, err := opts.app()
				if err != nil {
					return err
				}

				views, err := a.Balances.UserBalances(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), views)
			},
		},
	)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
