// Package main implements the patternctl binary: a runner and reader for
// the shipped design-pattern demonstrations.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/patternctl/internal/catalog"
	"github.com/danmuck/patternctl/internal/config"
	"github.com/danmuck/patternctl/internal/docs"
	"github.com/danmuck/patternctl/internal/observability"
)

var (
	configPath string
	noColor    bool
	logLevel   string

	cfg      config.Config
	registry *catalog.Registry
	manifest docs.Manifest
)

var rootCmd = &cobra.Command{
	Use:   "patternctl",
	Short: "Run and read design pattern demonstrations",
	Long: `patternctl ships thirteen object-oriented design pattern demonstrations
(creational, structural, behavioral) as runnable demos with Markdown
write-ups.

Use "list" to see the catalog, "run" to execute demos, and "show" to read
a pattern's write-up in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadRunnerConfig(configPath)
		if err != nil {
			return err
		}

		level, _ := observability.ParseLevel(cfg.Log.Level)
		logger := observability.InitLogger("patternctl", level, cfg.Log.Timestamp)
		observability.RegisterMetrics()

		registry = catalog.Default()
		manifest, err = docs.Load()
		if err != nil {
			return err
		}
		if err := manifest.VerifyAgainst(registry); err != nil {
			return fmt.Errorf("catalog/docs drift: %w", err)
		}

		logger.Debug().
			Int("patterns", registry.Len()).
			Str("config", configPath).
			Msg("catalog ready")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "patternctl.toml",
		"path to the runner config")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable styled output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"override the configured log level (debug|info|warn|error)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}
