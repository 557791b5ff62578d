package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	opts := app.Options{
		Pool:       e.pool(ctx),
		Ledger:     e.ledger(ctx),
		Engine:     e.engine(),
		Countdown:  e.countdown(),
		BatchSize:  e.cfg.BatchSize,
		Logger:     e.logger,
		SkipSplash: skipSplash,
	}

	if err := app.Run(opts); err != nil {
		e.logger.Error("tui exited", "error", err)
		return err
	}
	return nil
}
