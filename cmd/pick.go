package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/question"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Print a random batch of unfinished questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, _ := cmd.Flags().GetInt("sets")
		perSet, _ := cmd.Flags().GetInt("per-set")
		if sets < 1 {
			return fmt.Errorf("--sets must be at least 1")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if perSet <= 0 {
			perSet = e.cfg.BatchSize
		}

		ctx := cmd.Context()
		p := e.pool(ctx)
		done := e.ledger(ctx)
		engine := e.engine()
		out := cmd.OutOrStdout()

		if sets == 1 {
			batch := engine.PickRandom(p.Questions(), done, perSet)
			if len(batch) == 0 {
				fmt.Fprintln(out, "All questions completed!")
				return nil
			}
			printQuestions(out, batch)
			return nil
		}

		remaining := ledger.FilterRemaining(p.Questions(), done)
		groups := engine.PickUniqueSets(remaining, sets, perSet)
		if len(groups) == 0 {
			return fmt.Errorf("not enough unfinished questions for a set of %d (%d left)", perSet, len(remaining))
		}
		for i, g := range groups {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "Set %d\n", i+1)
			printQuestions(out, g)
		}
		return nil
	},
}

func printQuestions(w io.Writer, qs []question.Question) {
	for _, q := range qs {
		fmt.Fprintf(w, "  %-32s  %-24s  %s\n",
			truncate(q.Name, 32), truncate(question.DisplayText(q.Pattern), 24), q.URL())
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	pickCmd.Flags().Int("sets", 1, "Number of disjoint sets to draw")
	pickCmd.Flags().Int("per-set", 0, "Questions per set (default: batch size)")
}
