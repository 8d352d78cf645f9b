package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the built-in configuration",
	Long: `Writes the built-in YAML configuration to stdout. Redirect it to a
file, edit it and pass it back with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
