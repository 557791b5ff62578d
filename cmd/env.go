package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/config"
	"github.com/anduckhmt146/leetpick/internal/countdown"
	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/pool"
	"github.com/anduckhmt146/leetpick/internal/question"
	"github.com/anduckhmt146/leetpick/internal/selection"
	"github.com/anduckhmt146/leetpick/internal/store"
)

// env bundles what every command needs: resolved config, an open store
// and a logger. Close releases both.
type env struct {
	cfg    config.Config
	store  *store.Store
	logger *slog.Logger
	logs   io.Closer
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger, logs, err := logging.OpenFile(cfg.LogFile(), level)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logs.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger.Info("started", "command", cmd.Name(), "db", cfg.DBPath)
	return &env{cfg: cfg, store: st, logger: logger, logs: logs}, nil
}

func (e *env) Close() error {
	err := e.store.Close()
	e.logs.Close()
	return err
}

func (e *env) source() pool.Source {
	if e.cfg.SourcePath != "" {
		return pool.FileSource(e.cfg.SourcePath)
	}
	return pool.StaticSource(question.DefaultDocument)
}

func (e *env) pool(ctx context.Context) *pool.Pool {
	return pool.Load(ctx, e.store.KV(), e.source(), e.logger)
}

func (e *env) ledger(ctx context.Context) *ledger.Ledger {
	return ledger.Load(ctx, e.store.KV(), e.logger)
}

func (e *env) engine() *selection.Engine {
	if e.cfg.Seed != 0 {
		return selection.NewSeeded(e.cfg.Seed)
	}
	return selection.New(nil)
}

func (e *env) countdown() *countdown.Countdown {
	return countdown.New(countdown.Options{
		Duration: e.cfg.Duration,
		Resume:   e.cfg.Resume,
		KV:       e.store.KV(),
		Logger:   e.logger,
	})
}
