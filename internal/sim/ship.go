package sim

import (
	"github.com/vovakirdan/space-garbage/internal/core"
)

// ShipState is the spaceship lifecycle state.
type ShipState int

const (
	ShipFlying ShipState = iota
	ShipExploded
)

// String returns a human-readable name for the state.
func (s ShipState) String() string {
	switch s {
	case ShipFlying:
		return "flying"
	case ShipExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Ship is the player-controlled spaceship. It is also the task that flies it.
type Ship struct {
	Row, Col           float64
	RowSpeed, ColSpeed float64

	state     ShipState
	physics   Physics
	animation []core.Frame // Frame per tick, cycled
	phase     int
	height    int
	width     int

	drawn      bool
	drawnRow   float64
	drawnCol   float64
	drawnFrame core.Frame

	fired    bool
	lastShot uint64
}

// newShip places the ship in the middle of the field.
func newShip(w *World) *Ship {
	// Each rocket frame is held for two ticks.
	animation := make([]core.Frame, 0, 2*len(w.frames.Rocket))
	for _, f := range w.frames.Rocket {
		animation = append(animation, f, f)
	}

	h, wd := 0, 0
	for _, f := range w.frames.Rocket {
		fh, fw := f.Size()
		h, wd = core.Max(h, fh), core.Max(wd, fw)
	}

	return &Ship{
		Row:       float64(w.rows/2 - h/2),
		Col:       float64(w.cols/2 - wd/2),
		physics:   NewPhysics(w.cfg.Ship),
		animation: animation,
		height:    h,
		width:     wd,
	}
}

// State returns the lifecycle state.
func (s *Ship) State() ShipState {
	return s.state
}

// Box returns the ship's bounding box at its current position.
func (s *Ship) Box() core.Box {
	return core.NewBox(s.Row, s.Col, float64(s.height), float64(s.width))
}

// covers reports whether the cell (row, col) is painted by the flying ship.
func (s *Ship) covers(row, col int) bool {
	if s.state != ShipFlying || !s.drawn {
		return false
	}
	top, left := core.CellOf(s.drawnRow), core.CellOf(s.drawnCol)
	h, w := s.drawnFrame.Size()
	return row >= top && row < top+h && col >= left && col < left+w
}

// Step reads controls, moves, fires and checks for a crash.
func (s *Ship) Step(w *World) Status {
	if s.state == ShipExploded {
		return Done
	}

	in := w.input.Poll()
	s.RowSpeed, s.ColSpeed = s.physics.UpdateVelocity(s.RowSpeed, s.ColSpeed, in.Row, in.Col)

	border := float64(w.cfg.Ship.Border)
	s.Row = core.ClampF(s.Row+s.RowSpeed, border, float64(w.rows-s.height)-border)
	s.Col = core.ClampF(s.Col+s.ColSpeed, border, float64(w.cols-s.width)-border)

	if in.Fire && s.gunReady(w) {
		Fire(w, s.Row-1, s.Col+float64(s.width/2))
		s.fired = true
		s.lastShot = w.tick
	}

	if o := w.obstacles.HitBox(s.Box()); o != nil {
		s.explode(w, o)
		return Done
	}

	s.redraw(w)
	return Continuing
}

// gunReady reports whether the gun is unlocked and cooled down.
func (s *Ship) gunReady(w *World) bool {
	gun := w.cfg.Gun
	if w.clock.Year() < gun.UnlockYear {
		return false
	}
	if gun.Cooldown > 0 && s.fired && w.tick-s.lastShot < uint64(gun.Cooldown) {
		return false
	}
	return true
}

func (s *Ship) redraw(w *World) {
	s.erase(w)

	frame := s.animation[s.phase]
	s.phase = (s.phase + 1) % len(s.animation)

	core.DrawFrame(w.surface, s.Row, s.Col, frame, core.StyleNormal)
	s.drawn = true
	s.drawnRow, s.drawnCol, s.drawnFrame = s.Row, s.Col, frame
}

func (s *Ship) erase(w *World) {
	if !s.drawn {
		return
	}
	core.EraseFrame(w.surface, s.drawnRow, s.drawnCol, s.drawnFrame)
	s.drawn = false
}

// explode is the terminal transition: the ship is gone and the game over
// banner takes over.
func (s *Ship) explode(w *World, o *Obstacle) {
	s.erase(w)
	s.state = ShipExploded
	s.RowSpeed, s.ColSpeed = 0, 0

	centerRow, centerCol := s.Box().Center()
	w.RecordCollision(CollisionEvent{
		Obstacle: o,
		Impactor: ImpactorShip,
		Row:      centerRow,
		Col:      centerCol,
	})
	w.Launch(newExplosion(w, centerRow, centerCol))
	w.Launch(gameOverTask{})

	w.logger.Info("spaceship destroyed",
		"tick", w.tick,
		"year", w.clock.Year(),
		"garbage_id", o.ID,
		"shots", w.shots,
		"destroyed", w.destroyed,
	)
}

// gameOverTask keeps the banner on screen until the session is torn down.
type gameOverTask struct{}

func (gameOverTask) Step(w *World) Status {
	banner := w.frames.GameOver
	h, wd := banner.Size()
	core.DrawFrame(w.surface, float64(w.rows/2-h/2), float64(w.cols/2-wd/2), banner, core.StyleBold)
	return Continuing
}
