package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/patternctl/internal/catalog"
	"github.com/danmuck/patternctl/internal/observability"
	"github.com/danmuck/patternctl/internal/render"
)

var (
	runAll            bool
	runFamily         string
	runMetricsSummary bool
)

var runCmd = &cobra.Command{
	Use:   "run [pattern]...",
	Short: "Execute pattern demos",
	Long: `Execute one or more pattern demos by name, or every configured demo
with --all. Each demo streams its illustrative output under a styled
header.`,
	RunE: runDemos,
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every configured pattern")
	runCmd.Flags().StringVar(&runFamily, "family", "", "with --all, restrict to one family")
	runCmd.Flags().BoolVar(&runMetricsSummary, "metrics-summary", false,
		"print run counters after execution")
}

func runDemos(cmd *cobra.Command, args []string) error {
	selected, err := selectPatterns(args)
	if err != nil {
		return err
	}

	r := render.New(cmd.OutOrStdout(), cfg.Output.Color, cfg.Output.Width)
	for _, p := range selected {
		r.PatternHeader(p)

		start := time.Now()
		demoErr := p.Demo(cmd.OutOrStdout())
		elapsed := time.Since(start)
		observability.RecordDemo(string(p.Family()), p.Name(), demoErr, elapsed)

		if demoErr != nil {
			log.Error().Err(demoErr).Str("pattern", p.Name()).Msg("demo failed")
			return fmt.Errorf("demo %s failed: %w", p.Name(), demoErr)
		}
		log.Debug().
			Str("pattern", p.Name()).
			Dur("elapsed", elapsed).
			Msg("demo finished")
	}

	if runMetricsSummary || cfg.Run.MetricsSummary {
		report, err := observability.Summary()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), report)
	}
	return nil
}

func selectPatterns(args []string) ([]catalog.Pattern, error) {
	if runAll {
		if len(args) > 0 {
			return nil, fmt.Errorf("--all does not take pattern names")
		}
		return configuredPatterns()
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("name at least one pattern or pass --all")
	}
	selected := make([]catalog.Pattern, 0, len(args))
	for _, name := range args {
		p, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown pattern: %s", name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// configuredPatterns honors config run order; --family narrows it.
func configuredPatterns() ([]catalog.Pattern, error) {
	families := cfg.Run.Families
	if runFamily != "" {
		f, err := familyByName(runFamily)
		if err != nil {
			return nil, err
		}
		families = []string{string(f)}
	}
	var selected []catalog.Pattern
	for _, name := range families {
		selected = append(selected, registry.ByFamily(catalog.Family(name))...)
	}
	return selected, nil
}
