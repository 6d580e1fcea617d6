package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/patternctl/internal/config"
)

var (
	configInitOutput string
	configInitForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the runner config",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config template",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&configInitOutput, "output", "patternctl.toml",
		"output path for the config template")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteTemplate(configInitOutput, configInitForce); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configInitOutput)
	return nil
}
