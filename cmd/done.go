package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <name>",
	Short: "Toggle a question between completed and not completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		q, ok := e.pool(ctx).Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown question %q", args[0])
		}

		completed, err := e.ledger(ctx).Toggle(ctx, q.Name)
		if err != nil {
			return err
		}

		state := "not completed"
		if completed {
			state = "completed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", q.Name, state)
		return nil
	},
}
