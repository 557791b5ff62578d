package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anduckhmt146/leetpick/internal/config"
)

// loadConfig layers config file, dotenv and environment, then applies any
// flags set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, config.DefaultEnvFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("source") {
		cfg.SourcePath, _ = flags.GetString("source")
	}
	if flags.Changed("batch") {
		cfg.BatchSize, _ = flags.GetInt("batch")
	}
	if flags.Changed("duration") {
		cfg.Duration, _ = flags.GetDuration("duration")
	}
	if flags.Changed("resume") {
		cfg.Resume, _ = flags.GetBool("resume")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogPath, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
