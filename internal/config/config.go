package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Families the runner knows, in canonical run order.
var KnownFamilies = []string{"creational", "structural", "behavioral"}

type Config struct {
	Output OutputConfig `toml:"output"`
	Run    RunConfig    `toml:"run"`
	Log    LogConfig    `toml:"log"`
}

type OutputConfig struct {
	Color bool `toml:"color"`
	Width int  `toml:"width"`
}

type RunConfig struct {
	Families       []string `toml:"families"`
	MetricsSummary bool     `toml:"metrics_summary"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
}

func Default() Config {
	return Config{
		Output: OutputConfig{Color: true, Width: 80},
		Run:    RunConfig{Families: append([]string(nil), KnownFamilies...)},
		Log:    LogConfig{Level: "info", Timestamp: true},
	}
}

// Load reads a TOML config over the defaults. Family names are folded to
// their canonical lowercase form before validation. A missing file is not
// an error; the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	for i, family := range cfg.Run.Families {
		cfg.Run.Families[i] = strings.ToLower(strings.TrimSpace(family))
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Output.Width != 0 && (cfg.Output.Width < 40 || cfg.Output.Width > 200) {
		return fmt.Errorf("output width %d out of range [40,200]", cfg.Output.Width)
	}
	seen := make(map[string]bool, len(cfg.Run.Families))
	for i, family := range cfg.Run.Families {
		name := strings.ToLower(strings.TrimSpace(family))
		if !knownFamily(name) {
			return fmt.Errorf("run family[%d] unknown: %s", i, family)
		}
		if seen[name] {
			return fmt.Errorf("run family[%d] duplicated: %s", i, family)
		}
		seen[name] = true
	}
	if _, ok := levelNames[strings.ToLower(strings.TrimSpace(cfg.Log.Level))]; !ok {
		return fmt.Errorf("log level unknown: %s", cfg.Log.Level)
	}
	return nil
}

var levelNames = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

func knownFamily(name string) bool {
	for _, f := range KnownFamilies {
		if f == name {
			return true
		}
	}
	return false
}
