package sim

import (
	"github.com/vovakirdan/space-garbage/internal/core"
)

// spawnerTask drops a new piece of garbage at the top of the field at most
// once per spawn interval. An interval of 0 pauses it.
type spawnerTask struct {
	wait int // ticks left before the next spawn is allowed
}

func (s *spawnerTask) Step(w *World) Status {
	if s.wait > 0 {
		s.wait--
	}

	interval := w.clock.SpawnInterval()
	if interval == 0 || s.wait > 0 {
		return Continuing
	}

	frame := w.frames.Garbage[w.rng.Intn(len(w.frames.Garbage))]
	_, width := frame.Size()
	w.LaunchObstacle(0, float64(spawnColumn(w, width)), frame)

	s.wait = interval
	return Continuing
}

// spawnColumn picks a random left edge in [width, cols-2*width], keeping a
// margin of one shape width on both sides. Fields too narrow for that
// margin get the centered column.
func spawnColumn(w *World, width int) int {
	lo, hi := width, w.cols-2*width
	if hi < lo {
		return core.Max(0, (w.cols-width)/2)
	}
	return lo + w.rng.Intn(hi-lo+1)
}
