package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/core"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "List frame assets and their sizes",
	Long: `Shows every frame the game would draw, grouped by role.

Frames are plain text files. In a --frames directory, files named
rocket*.txt animate the ship, explosion*.txt are explosion phases,
game_over.txt is the banner and any other *.txt is a garbage shape.`,
	Args: cobra.NoArgs,
	RunE: runFrames,
}

func runFrames(cmd *cobra.Command, _ []string) error {
	var (
		set assets.Set
		err error
	)
	if flagFrames != "" {
		set, err = assets.LoadDir(flagFrames)
	} else {
		set, err = assets.Default()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	groups := []struct {
		title  string
		frames []core.Frame
	}{
		{"Rocket", set.Rocket},
		{"Garbage", set.Garbage},
		{"Explosion", set.Explosion},
		{"Game over", []core.Frame{set.GameOver}},
	}

	maxNameLen := 4 // "Name" header
	for _, f := range set.All() {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	for _, g := range groups {
		fmt.Fprintf(out, "%s:\n", g.title)
		for _, f := range g.frames {
			h, w := f.Size()
			fmt.Fprintf(out, "  %-*s  %dx%d\n", maxNameLen, f.Name, h, w)
		}
	}
	return nil
}
