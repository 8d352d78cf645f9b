package sim

import (
	"testing"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
)

// testFrames is a tiny frame set with easy-to-reason-about sizes.
func testFrames() assets.Set {
	return assets.Set{
		Rocket: []core.Frame{
			core.NewFrame("rocket_1", "/\\\n||"),
			core.NewFrame("rocket_2", "/\\\n##"),
		},
		Garbage: []core.Frame{
			core.NewFrame("crate", "###\n###"),
		},
		Explosion: []core.Frame{
			core.NewFrame("explosion_1", "*"),
			core.NewFrame("explosion_2", "+"),
		},
		GameOver: core.NewFrame("game_over", "GAME OVER"),
	}
}

// testConfig disables stars, unlocks the gun and keeps spawning paused.
func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Stars.Count = 0
	cfg.Gun.UnlockYear = 0
	cfg.Difficulty.Spawn = []config.SpawnStep{{Year: 3000, Interval: 1}}
	return cfg
}

type testRig struct {
	world  *World
	screen *core.Screen
	input  *core.InputQueue
}

func newRig(t *testing.T, rows, cols int, cfg config.Config) testRig {
	t.Helper()

	screen := core.NewScreen(rows, cols)
	input := core.NewInputQueue()
	w, err := New(Options{
		Config:  cfg,
		Frames:  testFrames(),
		Surface: screen,
		Input:   input,
		Seed:    42,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return testRig{world: w, screen: screen, input: input}
}

func (r testRig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.world.Tick()
	}
}
