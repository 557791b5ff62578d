package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leetpick",
	Short: "Random interview questions, three at a time",
	Long: `LeetPick shows a small random batch of interview questions you have not
finished yet, tracks which ones you complete, and runs a study countdown.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("db", "", "Path to SQLite database file (overrides LEETPICK_DB)")
	pf.String("source", "", "Markdown question table to load instead of the built-in list")
	pf.Int("batch", 0, "Questions per batch (default 3)")
	pf.Duration("duration", 0, "Study countdown length (default 1h)")
	pf.Bool("resume", false, "Resume the previous countdown instead of restarting it")
	pf.Uint64("seed", 0, "Random seed for reproducible picks (0 means random)")
	pf.String("log-file", "", "Log file path (default: leetpick.log next to the database)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
