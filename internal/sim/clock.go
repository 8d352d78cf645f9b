package sim

import (
	"sort"

	"github.com/vovakirdan/space-garbage/internal/config"
)

// SpawnTable is a stepped lookup from year to spawn interval in ticks.
type SpawnTable struct {
	steps []config.SpawnStep
}

// NewSpawnTable builds a table from config steps, sorted by year.
func NewSpawnTable(steps []config.SpawnStep) SpawnTable {
	sorted := make([]config.SpawnStep, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year < sorted[j].Year
	})
	return SpawnTable{steps: sorted}
}

// Interval returns the interval of the greatest threshold not after year.
// Years before the first threshold map to 0, which pauses spawning.
func (t SpawnTable) Interval(year int) int {
	i := sort.Search(len(t.steps), func(i int) bool {
		return t.steps[i].Year > year
	})
	if i == 0 {
		return 0
	}
	return t.steps[i-1].Interval
}

// Steps returns the table rows in year order.
func (t SpawnTable) Steps() []config.SpawnStep {
	out := make([]config.SpawnStep, len(t.steps))
	copy(out, t.steps)
	return out
}

// PhraseTable maps specific years to narrative text.
type PhraseTable map[int]string

// NewPhraseTable builds a phrase table from config. Later entries for the
// same year replace earlier ones.
func NewPhraseTable(phrases []config.Phrase) PhraseTable {
	t := make(PhraseTable, len(phrases))
	for _, p := range phrases {
		t[p.Year] = p.Text
	}
	return t
}

// Phrase returns the text for year, or "" when there is none.
func (t PhraseTable) Phrase(year int) string {
	return t[year]
}

// Clock is the year counter that drives difficulty.
type Clock struct {
	year         int
	ticksPerYear int
	elapsed      int // ticks into the current year
	spawn        SpawnTable
	phrases      PhraseTable
}

// NewClock creates a clock at the configured start year.
func NewClock(clock config.ClockConfig, difficulty config.DifficultyConfig) *Clock {
	return &Clock{
		year:         clock.StartYear,
		ticksPerYear: clock.TicksPerYear,
		spawn:        NewSpawnTable(difficulty.Spawn),
		phrases:      NewPhraseTable(difficulty.Phrases),
	}
}

// Year returns the current year.
func (c *Clock) Year() int {
	return c.year
}

// Advance counts one tick and reports whether the year changed.
func (c *Clock) Advance() bool {
	c.elapsed++
	if c.elapsed < c.ticksPerYear {
		return false
	}
	c.elapsed = 0
	c.year++
	return true
}

// SpawnInterval returns the spawn interval for the current year.
func (c *Clock) SpawnInterval() int {
	return c.spawn.Interval(c.year)
}

// Phrase returns the narrative text for the current year.
func (c *Clock) Phrase() string {
	return c.phrases.Phrase(c.year)
}

// Table returns the spawn table in use.
func (c *Clock) Table() SpawnTable {
	return c.spawn
}

// clockTask advances the year clock once per tick, forever.
type clockTask struct{}

func (clockTask) Step(w *World) Status {
	if w.clock.Advance() {
		w.logger.Debug("new year",
			"year", w.clock.Year(),
			"spawn_interval", w.clock.SpawnInterval(),
			"phrase", w.clock.Phrase(),
		)
	}
	return Continuing
}
