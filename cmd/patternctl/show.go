package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/patternctl/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <pattern>",
	Short: "Read a pattern's write-up in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	if _, ok := registry.Get(name); !ok {
		return fmt.Errorf("unknown pattern: %s", name)
	}
	body, err := manifest.ReadDoc(name)
	if err != nil {
		return err
	}
	return render.New(cmd.OutOrStdout(), cfg.Output.Color, cfg.Output.Width).Markdown(body)
}
