package main

import (
	"fmt"

	"github.com/danmuck/patternctl/internal/config"
	"github.com/danmuck/patternctl/internal/observability"
)

// loadRunnerConfig reads the TOML config and applies flag overrides on
// top. Flags win over the file; the file wins over defaults.
func loadRunnerConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if noColor {
		cfg.Output.Color = false
	}
	if logLevel != "" {
		if _, ok := observability.ParseLevel(logLevel); !ok {
			return config.Config{}, fmt.Errorf("log level unknown: %s", logLevel)
		}
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}
