// Package docs owns the embedded pattern write-ups and their index.
//
// Ownership boundary:
// - the catalog.yaml manifest and its validation
// - the per-pattern Markdown under patterns/
// - cross-checking the manifest against a live registry
package docs

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danmuck/patternctl/internal/catalog"
)

//go:embed catalog.yaml patterns/*.md
var assets embed.FS

// Entry describes one pattern in the manifest.
type Entry struct {
	Name    string `yaml:"name"`
	Family  string `yaml:"family"`
	Summary string `yaml:"summary"`
	Doc     string `yaml:"doc"`
}

// Manifest is the parsed pattern index.
type Manifest struct {
	Patterns []Entry `yaml:"patterns"`
}

// Load parses and validates the embedded manifest.
func Load() (Manifest, error) {
	raw, err := assets.ReadFile("catalog.yaml")
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest read failed: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest parse failed: %w", err)
	}
	if err := validate(m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func validate(m Manifest) error {
	if len(m.Patterns) == 0 {
		return fmt.Errorf("manifest lists no patterns")
	}
	seen := make(map[string]bool, len(m.Patterns))
	for i, e := range m.Patterns {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("manifest entry[%d] missing name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("manifest entry[%d] duplicated: %s", i, e.Name)
		}
		seen[e.Name] = true
		if !knownFamily(e.Family) {
			return fmt.Errorf("manifest entry %s has unknown family: %s", e.Name, e.Family)
		}
		if strings.TrimSpace(e.Summary) == "" {
			return fmt.Errorf("manifest entry %s missing summary", e.Name)
		}
		if _, err := assets.ReadFile("patterns/" + e.Doc); err != nil {
			return fmt.Errorf("manifest entry %s names missing doc %s: %w", e.Name, e.Doc, err)
		}
	}
	return nil
}

func knownFamily(name string) bool {
	for _, f := range catalog.Families() {
		if string(f) == name {
			return true
		}
	}
	return false
}

// Get looks up a manifest entry by pattern name.
func (m Manifest) Get(name string) (Entry, bool) {
	for _, e := range m.Patterns {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// ReadDoc returns the Markdown write-up for a pattern.
func (m Manifest) ReadDoc(name string) (string, error) {
	e, ok := m.Get(name)
	if !ok {
		return "", fmt.Errorf("no doc for pattern: %s", name)
	}
	raw, err := assets.ReadFile("patterns/" + e.Doc)
	if err != nil {
		return "", fmt.Errorf("doc read failed (%s): %w", e.Doc, err)
	}
	return string(raw), nil
}

// VerifyAgainst cross-checks the manifest with a registry: every registered
// pattern must be documented and every documented pattern registered.
func (m Manifest) VerifyAgainst(reg *catalog.Registry) error {
	for _, name := range reg.Names() {
		if _, ok := m.Get(name); !ok {
			return fmt.Errorf("registered pattern undocumented: %s", name)
		}
	}
	for _, e := range m.Patterns {
		if _, ok := reg.Get(e.Name); !ok {
			return fmt.Errorf("documented pattern unregistered: %s", e.Name)
		}
	}
	return nil
}
