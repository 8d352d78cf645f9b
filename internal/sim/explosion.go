package sim

import "github.com/vovakirdan/space-garbage/internal/core"

// explosionTask plays the explosion frames once, centred on a point.
type explosionTask struct {
	centerRow, centerCol float64
	frames               []core.Frame
	phase                int

	drawn     bool
	drawnRow  float64
	drawnCol  float64
	drawnFrom core.Frame
}

func newExplosion(w *World, centerRow, centerCol float64) *explosionTask {
	return &explosionTask{
		centerRow: centerRow,
		centerCol: centerCol,
		frames:    w.frames.Explosion,
	}
}

// Step shows the next phase; after the last one it clears up and finishes.
func (e *explosionTask) Step(w *World) Status {
	if e.drawn {
		core.EraseFrame(w.surface, e.drawnRow, e.drawnCol, e.drawnFrom)
		e.drawn = false
	}
	if e.phase >= len(e.frames) {
		return Done
	}

	f := e.frames[e.phase]
	h, wd := f.Size()
	e.drawnRow = e.centerRow - float64(h/2)
	e.drawnCol = e.centerCol - float64(wd/2)
	e.drawnFrom = f
	core.DrawFrame(w.surface, e.drawnRow, e.drawnCol, f, core.StyleBold)
	e.drawn = true
	e.phase++
	return Continuing
}
