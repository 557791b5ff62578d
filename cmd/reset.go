package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved progress, the cached pool, or the countdown",
	Long: `Clear persisted state. With no flags, everything is cleared.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clearLedger, _ := cmd.Flags().GetBool("ledger")
		clearCache, _ := cmd.Flags().GetBool("cache")
		clearTimer, _ := cmd.Flags().GetBool("timer")
		if !clearLedger && !clearCache && !clearTimer {
			clearLedger, clearCache, clearTimer = true, true, true
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if clearLedger {
			if err := e.ledger(ctx).Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Cleared completed questions")
		}
		if clearCache {
			if err := e.store.KV().Delete(ctx, store.KeyAllQuestions); err != nil {
				return fmt.Errorf("clear question cache: %w", err)
			}
			fmt.Fprintln(out, "Cleared question cache")
		}
		if clearTimer {
			if err := e.countdown().Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Cleared countdown")
		}
		e.logger.Info("reset", "ledger", clearLedger, "cache", clearCache, "timer", clearTimer)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("ledger", false, "Clear completed questions")
	resetCmd.Flags().Bool("cache", false, "Clear the cached question pool")
	resetCmd.Flags().Bool("timer", false, "Clear the saved countdown start")
}
