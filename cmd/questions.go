package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/question"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Browse the question pool",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all questions (optionally filtered by pattern)",
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("pattern")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		done := e.ledger(ctx)

		var qs []question.Question
		for _, q := range e.pool(ctx).Questions() {
			if pattern != "" && !strings.EqualFold(question.DisplayText(q.Pattern), pattern) {
				continue
			}
			qs = append(qs, q)
		}
		if pattern != "" && len(qs) == 0 {
			return fmt.Errorf("no questions found for pattern %q", pattern)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s  %-32s  %-24s  %s\n", "Done", "Name", "Pattern", "Link")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, q := range qs {
			mark := ""
			if done.Has(q.Name) {
				mark = "✔"
			}
			fmt.Fprintf(out, "%-4s  %-32s  %-24s  %s\n",
				mark, truncate(q.Name, 32), truncate(question.DisplayText(q.Pattern), 24), q.URL())
		}

		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

var questionsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-read the question source and replace the cached pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		p := e.pool(ctx)
		if err := p.Refresh(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d questions\n", p.Len())
		return nil
	},
}

func init() {
	questionsListCmd.Flags().String("pattern", "", "Filter by pattern (e.g. \"Two Pointers\")")

	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsRefreshCmd)
}
