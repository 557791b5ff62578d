package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/question"
)

type patternStats struct {
	name        string
	done, total int
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion per pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		done := e.ledger(ctx)

		var order []*patternStats
		byName := map[string]*patternStats{}
		var total, completed int
		for _, q := range e.pool(ctx).Questions() {
			name := question.DisplayText(q.Pattern)
			if name == "" {
				name = "(none)"
			}
			ps, ok := byName[name]
			if !ok {
				ps = &patternStats{name: name}
				byName[name] = ps
				order = append(order, ps)
			}
			ps.total++
			total++
			if done.Has(q.Name) {
				ps.done++
				completed++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-28s  %5s  %5s\n", "Pattern", "Done", "Total")
		fmt.Fprintln(out, strings.Repeat("─", 42))
		for _, ps := range order {
			fmt.Fprintf(out, "%-28s  %5d  %5d\n", truncate(ps.name, 28), ps.done, ps.total)
		}
		fmt.Fprintf(out, "\n%d/%d completed\n", completed, total)
		return nil
	},
}
