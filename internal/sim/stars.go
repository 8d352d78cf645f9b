package sim

import (
	"github.com/vovakirdan/space-garbage/internal/core"
)

// blinkPhase is one step of the star twinkle cycle.
type blinkPhase struct {
	style core.Style
	ticks int
}

// blinkCycle is dim, normal, bold, normal. The dim phase lasts the star's
// own offset so stars twinkle out of step.
var blinkCycle = [...]blinkPhase{
	{core.StyleDim, 0},
	{core.StyleNormal, 3},
	{core.StyleBold, 5},
	{core.StyleNormal, 3},
}

// starTask twinkles one star forever.
type starTask struct {
	row, col int
	glyph    rune
	offset   int
	phase    int
	wait     int
}

func newStar(w *World) *starTask {
	glyphs := []rune(w.cfg.Stars.Glyphs)
	return &starTask{
		row:    1 + w.rng.Intn(core.Max(1, w.rows-2)),
		col:    1 + w.rng.Intn(core.Max(1, w.cols-2)),
		glyph:  glyphs[w.rng.Intn(len(glyphs))],
		offset: w.rng.Intn(21),
	}
}

func (s *starTask) Step(w *World) Status {
	if s.wait == 0 {
		for s.phaseTicks() == 0 {
			s.advance()
		}
		s.wait = s.phaseTicks()
		w.surface.Draw(s.row, s.col, s.glyph, blinkCycle[s.phase].style)
	}

	s.wait--
	if s.wait == 0 {
		s.advance()
	}
	return Continuing
}

// phaseTicks returns how long the current phase lasts.
func (s *starTask) phaseTicks() int {
	if s.phase == 0 {
		return s.offset
	}
	return blinkCycle[s.phase].ticks
}

func (s *starTask) advance() {
	s.phase = (s.phase + 1) % len(blinkCycle)
}
