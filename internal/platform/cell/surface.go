// Package cell runs a space garbage session directly on a tcell screen,
// without Bubble Tea. It is the lower-level alternative to package tui.
package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// cellStyles maps core.Style flags to tcell styles.
var cellStyles = map[core.Style]tcell.Style{
	core.StyleNormal:               tcell.StyleDefault,
	core.StyleDim:                  tcell.StyleDefault.Dim(true),
	core.StyleBold:                 tcell.StyleDefault.Bold(true),
	core.StyleDim | core.StyleBold: tcell.StyleDefault.Bold(true),
}

// Surface draws onto a tcell.Screen. Row and column map to tcell's y and x.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized tcell screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Draw places a glyph at (row, col).
func (s *Surface) Draw(row, col int, glyph rune, style core.Style) {
	st, ok := cellStyles[style]
	if !ok {
		st = tcell.StyleDefault
	}
	s.screen.SetContent(col, row, glyph, nil, st)
}

// Erase blanks the cell at (row, col).
func (s *Surface) Erase(row, col int) {
	s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
}

// Bounds returns the screen size as (rows, cols).
func (s *Surface) Bounds() (int, int) {
	w, h := s.screen.Size()
	return h, w
}
