package cell

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/sim"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func newTestDriver(t *testing.T, screen tcell.Screen) *Driver {
	t.Helper()

	frames, err := assets.Default()
	if err != nil {
		t.Fatalf("assets.Default() failed: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.Stars.Count = 0
	cfg.Gun.UnlockYear = 0

	d, err := NewDriver(screen, sim.Options{Config: cfg, Frames: frames}, core.RuntimeConfig{
		TickInterval: 5 * time.Millisecond,
		Seed:         3,
	})
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}
	return d
}

func TestSurfaceDrawAndErase(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	s := NewSurface(screen)

	if rows, cols := s.Bounds(); rows != 10 || cols != 20 {
		t.Fatalf("Bounds() = %dx%d, expected 10x20", rows, cols)
	}

	s.Draw(2, 5, '*', core.StyleBold)
	r, _, style, _ := screen.GetContent(5, 2)
	if r != '*' {
		t.Errorf("content at (2, 5) = %q, expected '*'", r)
	}
	if style != cellStyles[core.StyleBold] {
		t.Error("bold flag not mapped to tcell bold")
	}

	s.Erase(2, 5)
	if r, _, _, _ := screen.GetContent(5, 2); r != ' ' {
		t.Errorf("content after erase = %q, expected blank", r)
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.Action
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.ActionUp},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), core.ActionRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionFire},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), core.ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapKey(tc.ev); got != tc.expected {
				t.Errorf("mapKey() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDriverTicksWorld(t *testing.T) {
	screen := newTestScreen(t, 60, 20)
	d := newTestDriver(t, screen)

	start := d.World().Ship().Row
	if !d.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("arrow key should not end the session")
	}
	d.Tick()

	if d.World().Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", d.World().Ticks())
	}
	if got := d.World().Ship().Row; got >= start {
		t.Errorf("ship row %v, expected above %v", got, start)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != '┌' {
		t.Errorf("corner = %q, expected border", r)
	}
}

func TestDriverQuit(t *testing.T) {
	screen := newTestScreen(t, 60, 20)
	d := newTestDriver(t, screen)

	if d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should end the session")
	}
}

func TestDriverResizeRestarts(t *testing.T) {
	screen := newTestScreen(t, 60, 20)
	d := newTestDriver(t, screen)
	d.Tick()

	screen.SetSize(4, 4)
	d.HandleEvent(tcell.NewEventResize(4, 4))
	if d.World() != nil {
		t.Fatal("world should not run on a tiny screen")
	}
	d.Tick() // must not panic

	screen.SetSize(50, 18)
	d.HandleEvent(tcell.NewEventResize(50, 18))
	if d.World() == nil {
		t.Fatal("world should restart after growing")
	}
	if rows, cols := d.World().Bounds(); rows != 18 || cols != 50 {
		t.Errorf("world is %dx%d, expected 18x50", rows, cols)
	}
	if d.World().Ticks() != 0 {
		t.Error("restarted world should be fresh")
	}
}

func TestDriverRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t, 60, 20)
	d := newTestDriver(t, screen)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if d.World().Ticks() == 0 {
		t.Error("world should have ticked while running")
	}
}
