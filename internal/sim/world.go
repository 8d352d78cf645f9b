package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
)

// Options configures a new World.
type Options struct {
	Config  config.Config
	Frames  assets.Set
	Surface core.Surface       // Where everything is drawn
	Input   core.ImpulseSource // Polled by the ship once per tick
	Seed    int64              // RNG seed for star placement and garbage spawns
	Logger  *log.Logger        // Optional; discards when nil
}

// World owns every registry of one game session and is handed to each
// task's Step.
type World struct {
	cfg     config.Config
	frames  assets.Set
	surface core.Surface
	input   core.ImpulseSource
	rng     *rand.Rand
	logger  *log.Logger

	rows, cols int

	scheduler  *Scheduler
	obstacles  *Registry
	collisions *collisionSet
	clock      *Clock
	ship       *Ship

	tick      uint64
	shots     int
	destroyed int
}

// New validates the options and builds a world. No task is scheduled until
// Start is called.
func New(opts Options) (*World, error) {
	if opts.Surface == nil {
		return nil, errors.New("sim: no surface")
	}
	if opts.Input == nil {
		return nil, errors.New("sim: no input source")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if err := opts.Frames.Validate(); err != nil {
		return nil, fmt.Errorf("sim: frames: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rows, cols := opts.Surface.Bounds()
	w := &World{
		cfg:        opts.Config,
		frames:     opts.Frames,
		surface:    opts.Surface,
		input:      opts.Input,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		logger:     logger,
		rows:       rows,
		cols:       cols,
		scheduler:  NewScheduler(),
		obstacles:  NewRegistry(),
		collisions: newCollisionSet(),
		clock:      NewClock(opts.Config.Clock, opts.Config.Difficulty),
	}
	w.ship = newShip(w)

	border := 2 * opts.Config.Ship.Border
	if rows < w.ship.height+border || cols < w.ship.width+border {
		return nil, fmt.Errorf("sim: field %dx%d is too small for a %dx%d ship", rows, cols, w.ship.height, w.ship.width)
	}
	return w, nil
}

// Start draws the field and schedules the starfield, the ship, the garbage
// spawner and the year clock.
func (w *World) Start() {
	core.DrawBorder(w.surface)

	for i := 0; i < w.cfg.Stars.Count; i++ {
		w.Launch(newStar(w))
	}
	w.Launch(w.ship)
	w.Launch(&spawnerTask{})
	w.Launch(clockTask{})

	w.logger.Info("session started",
		"rows", w.rows,
		"cols", w.cols,
		"year", w.clock.Year(),
		"tasks", w.scheduler.Len(),
	)
}

// Tick advances the simulation by one step: every scheduled task runs once,
// then the collisions recorded during the step are resolved.
func (w *World) Tick() {
	w.tick++
	w.scheduler.Tick(w)
	w.settle()
	w.drawChrome()
}

// Launch schedules a task. Tasks launched during a tick first run on the
// next one.
func (w *World) Launch(t Task) {
	w.scheduler.Register(t)
}

// LaunchObstacle registers a piece of garbage at (row, col) and schedules
// its descent.
func (w *World) LaunchObstacle(row, col float64, frame core.Frame) *Obstacle {
	o := w.obstacles.Spawn(row, col, frame)
	d := &debrisTask{obstacle: o, speed: w.cfg.Debris.Speed}
	o.owner = d
	w.Launch(d)

	w.logger.Debug("garbage spawned", "id", o.ID, "frame", frame.Name, "col", col, "tick", w.tick)
	return o
}

// RecordCollision adds a pending collision for this tick. It reports false
// when the obstacle already has one.
func (w *World) RecordCollision(ev CollisionEvent) bool {
	ev.Tick = w.tick
	ok := w.collisions.record(ev)
	if ok {
		w.logger.Debug("collision", "impactor", ev.Impactor, "garbage_id", ev.Obstacle.ID, "tick", w.tick)
	}
	return ok
}

// settle hands every pending collision to the descent task that owns the
// obstacle, then clears the set.
func (w *World) settle() {
	for _, ev := range w.collisions.drain() {
		if owner := ev.Obstacle.owner; owner != nil {
			owner.consume(w, ev)
			continue
		}
		w.destroy(ev.Obstacle, ev)
	}
}

// destroy removes an obstacle and leaves an explosion where it was.
func (w *World) destroy(o *Obstacle, ev CollisionEvent) {
	if !w.obstacles.Remove(o) {
		return
	}
	w.destroyed++

	row, col := o.Box.Center()
	w.Launch(newExplosion(w, row, col))
	w.logger.Debug("garbage destroyed", "id", o.ID, "by", ev.Impactor, "tick", w.tick)
}

// drawChrome redraws the border and the year panel on the bottom edge.
func (w *World) drawChrome() {
	core.DrawBorder(w.surface)

	text := fmt.Sprintf(" Year %d ", w.clock.Year())
	if phrase := w.clock.Phrase(); phrase != "" {
		text += "- " + phrase + " "
	}
	core.DrawText(w.surface, w.rows-1, 2, text, core.StyleNormal, core.Max(0, w.cols-4))
}

// inField reports whether (row, col) is strictly inside the border.
func (w *World) inField(row, col float64) bool {
	return row > 0 && row < float64(w.rows-1) && col > 0 && col < float64(w.cols-1)
}

// Bounds returns the field size in cells.
func (w *World) Bounds() (int, int) {
	return w.rows, w.cols
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Obstacles returns the obstacle registry.
func (w *World) Obstacles() *Registry {
	return w.obstacles
}

// Clock returns the year clock.
func (w *World) Clock() *Clock {
	return w.clock
}

// Ship returns the player's spaceship.
func (w *World) Ship() *Ship {
	return w.ship
}

// Tasks returns the number of scheduled tasks.
func (w *World) Tasks() int {
	return w.scheduler.Len()
}

// GameOver reports whether the ship has been destroyed.
func (w *World) GameOver() bool {
	return w.ship.State() == ShipExploded
}

// Stats summarizes a session.
type Stats struct {
	Ticks     uint64
	Year      int
	Shots     int
	Destroyed int
}

// Stats returns the session counters.
func (w *World) Stats() Stats {
	return Stats{
		Ticks:     w.tick,
		Year:      w.clock.Year(),
		Shots:     w.shots,
		Destroyed: w.destroyed,
	}
}
