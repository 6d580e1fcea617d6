package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danmuck/patternctl/internal/catalog"
	"github.com/danmuck/patternctl/internal/render"
)

var listFamily string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pattern catalog",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFamily, "family", "",
		"only list one family (creational|structural|behavioral)")
}

func runList(cmd *cobra.Command, args []string) error {
	r := render.New(cmd.OutOrStdout(), cfg.Output.Color, cfg.Output.Width)

	families := catalog.Families()
	if listFamily != "" {
		f, err := familyByName(listFamily)
		if err != nil {
			return err
		}
		families = []catalog.Family{f}
	}

	for _, family := range families {
		r.FamilyHeading(family)
		for _, p := range registry.ByFamily(family) {
			r.ListRow(p)
		}
	}
	return nil
}

// familyByName resolves a family argument to its canonical form, matching
// the case folding the config loader applies.
func familyByName(name string) (catalog.Family, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, f := range catalog.Families() {
		if string(f) == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown family: %s", name)
}
