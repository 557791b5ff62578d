package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/question"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("pattern")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		completed := ledger.FilterCompleted(e.pool(ctx).Questions(), e.ledger(ctx))

		var shown []question.Question
		for _, q := range completed {
			if pattern != "" && !strings.EqualFold(question.DisplayText(q.Pattern), pattern) {
				continue
			}
			shown = append(shown, q)
		}

		out := cmd.OutOrStdout()
		if len(shown) == 0 {
			fmt.Fprintln(out, "No completed questions yet.")
			return nil
		}
		printQuestions(out, shown)
		fmt.Fprintf(out, "\n%d completed\n", len(shown))
		return nil
	},
}

func init() {
	historyCmd.Flags().String("pattern", "", "Only show questions with this pattern")
}
