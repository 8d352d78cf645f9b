package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/sim"
)

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Print the difficulty timeline",
	Long: `Shows how often garbage spawns in each era and the phrase shown
in the year panel. Intervals are in ticks; 0 means nothing spawns yet.`,
	Args: cobra.NoArgs,
	RunE: runYears,
}

func runYears(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	table := sim.NewSpawnTable(cfg.Difficulty.Spawn)
	phrases := sim.NewPhraseTable(cfg.Difficulty.Phrases)

	fmt.Fprintf(out, "Starts in %d, one year every %d ticks (%s).\n\n",
		cfg.Clock.StartYear, cfg.Clock.TicksPerYear, time.Duration(cfg.Clock.TicksPerYear)*cfg.TickInterval())

	fmt.Fprintf(out, "  %-6s  %-8s  %s\n", "Year", "Interval", "Phrase")
	fmt.Fprintf(out, "  %-6s  %-8s  %s\n", "----", "--------", "------")

	for _, year := range timelineYears(cfg) {
		fmt.Fprintf(out, "  %-6d  %-8d  %s\n", year, table.Interval(year), phrases.Phrase(year))
	}
	return nil
}

// timelineYears returns the start year plus every year that changes the
// spawn interval or carries a phrase, in order.
func timelineYears(cfg config.Config) []int {
	seen := map[int]bool{cfg.Clock.StartYear: true}
	years := []int{cfg.Clock.StartYear}
	add := func(y int) {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	for _, s := range cfg.Difficulty.Spawn {
		add(s.Year)
	}
	for _, p := range cfg.Difficulty.Phrases {
		add(p.Year)
	}
	sort.Ints(years)
	return years
}
