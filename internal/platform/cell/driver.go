package cell

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/sim"
)

// Driver runs sessions on a tcell screen: key events feed the ship's input
// queue and a ticker steps the world.
type Driver struct {
	screen  tcell.Screen
	surface *Surface
	input   *core.InputQueue
	session sim.Options // Template; surface, input and seed are filled per world
	runtime core.RuntimeConfig
	logger  *log.Logger

	world *sim.World
	over  bool
}

// NewDriver starts a session on an initialized screen. The caller keeps
// ownership of the screen and must call Fini on it.
func NewDriver(screen tcell.Screen, session sim.Options, rc core.RuntimeConfig) (*Driver, error) {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickInterval <= 0 {
		rc.TickInterval = session.Config.TickInterval()
	}
	logger := session.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Driver{
		screen:  screen,
		surface: NewSurface(screen),
		input:   core.NewInputQueue(),
		session: session,
		runtime: rc,
		logger:  logger,
	}
	if err := d.restart(); err != nil {
		return nil, err
	}
	return d, nil
}

// restart clears the screen and starts a fresh world sized to it.
func (d *Driver) restart() error {
	d.screen.Clear()
	d.input.Clear()
	d.world = nil
	d.over = false

	opts := d.session
	opts.Surface = d.surface
	opts.Input = d.input
	opts.Seed = d.runtime.Seed
	opts.Logger = d.logger

	w, err := sim.New(opts)
	if err != nil {
		return fmt.Errorf("cell: %w", err)
	}
	d.world = w
	w.Start()
	d.screen.Show()
	return nil
}

// World returns the running world, or nil while the screen is too small.
func (d *Driver) World() *sim.World {
	return d.world
}

// HandleEvent processes one tcell event. It returns false when the player
// asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := mapKey(ev)
		switch action {
		case core.ActionQuit:
			return false
		case core.ActionNone:
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && d.over {
				d.runtime.Seed++
				d.restartOrWait()
			}
		default:
			d.input.Push(action)
		}

	case *tcell.EventResize:
		d.screen.Sync()
		d.restartOrWait()
	}
	return true
}

// restartOrWait restarts and, when the screen is too small, waits for the
// next resize.
func (d *Driver) restartOrWait() {
	if err := d.restart(); err != nil {
		rows, cols := d.surface.Bounds()
		d.logger.Warn("cannot start session", "rows", rows, "cols", cols, "err", err)
	}
}

// Tick advances the world one step and flushes the screen.
func (d *Driver) Tick() {
	if d.world == nil {
		return
	}
	d.world.Tick()

	if d.world.GameOver() && !d.over {
		d.over = true
		stats := d.world.Stats()
		d.logger.Info("game over",
			"year", stats.Year,
			"ticks", stats.Ticks,
			"shots", stats.Shots,
			"destroyed", stats.Destroyed,
		)
	}
	d.screen.Show()
}

// Stats returns the counters of the current session.
func (d *Driver) Stats() sim.Stats {
	if d.world == nil {
		return sim.Stats{}
	}
	return d.world.Stats()
}

// Run loops until the player quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.runtime.TickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Run opens the terminal with tcell, plays until the player quits and
// returns the final session counters.
func Run(ctx context.Context, session sim.Options, rc core.RuntimeConfig) (sim.Stats, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return sim.Stats{}, fmt.Errorf("cell: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return sim.Stats{}, fmt.Errorf("cell: init screen: %w", err)
	}
	defer screen.Fini()

	d, err := NewDriver(screen, session, rc)
	if err != nil {
		return sim.Stats{}, err
	}
	if err := d.Run(ctx); err != nil {
		return d.Stats(), err
	}
	return d.Stats(), nil
}
