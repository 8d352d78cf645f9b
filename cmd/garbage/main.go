// garbage is a terminal game: fly a rocket through the decades while space
// garbage piles up in orbit.
//
// Usage:
//
//	garbage play             - Play in the current terminal
//	garbage frames           - List the frame assets and their sizes
//	garbage years            - Print the spawn table and the year phrases
//	garbage config           - Print the built-in YAML configuration
//
// Global flags:
//
//	--config <path>    - YAML or TOML config (default: search order, then built-in)
//	--frames <dir>     - Directory of frame files overriding the built-in ones
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFrames string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garbage",
	Short: "Space garbage - dodge the junk we left in orbit",
	Long: `Space garbage is a terminal game. Starting in 1957 the sky fills up
with rockets, lamps, telescopes and the odd duck. Steer your ship
between the falling garbage; in 2020 you get a plasma gun.

Available commands:
  play     - Play in the current terminal
  frames   - List frame assets
  years    - Print the difficulty timeline
  config   - Print the built-in configuration

Examples:
  garbage play
  garbage play --seed 42 --backend tcell
  garbage play --config ./garbage.toml --log-file garbage.log
  garbage config > garbage.yaml
  garbage years`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config")
	rootCmd.PersistentFlags().StringVar(&flagFrames, "frames", "", "Directory of custom frame files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(configCmd)
}
