package config

import (
	"fmt"
	"os"
)

func Template() string {
	return runnerTemplate
}

// WriteTemplate writes the default config file. Existing files are kept
// unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(runnerTemplate), 0o600)
}

const runnerTemplate = `[output]
color = true
width = 80

[run]
families = ["creational", "structural", "behavioral"]
metrics_summary = false

[log]
level = "info"
timestamp = true
`
