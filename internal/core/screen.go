package core

import (
	"strings"
)

// Surface is the drawing target the simulation renders into.
// The simulation never reads cells back; it only draws and erases.
type Surface interface {
	// Draw places a glyph at (row, col). Out-of-bounds cells are ignored.
	Draw(row, col int, glyph rune, style Style)
	// Erase blanks the cell at (row, col).
	Erase(row, col int)
	// Bounds returns the surface size in cells.
	Bounds() (rows, cols int)
}

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Style Style
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer implementing Surface.
// It decouples the simulation from the terminal: the simulation draws runes
// with style flags while the platform turns the buffer into terminal output.
type Screen struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows: rows,
		cols: cols,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.rows)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.cols)
	}
}

// Bounds returns the screen size as (rows, cols).
func (s *Screen) Bounds() (int, int) {
	return s.rows, s.cols
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

func (s *Screen) inBounds(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

// Draw places a glyph with a style at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Draw(row, col int, glyph rune, style Style) {
	if !s.inBounds(row, col) {
		return
	}
	s.cells[row][col] = Cell{Rune: glyph, Style: style}
}

// Erase blanks the cell at the given position.
func (s *Screen) Erase(row, col int) {
	if !s.inBounds(row, col) {
		return
	}
	s.cells[row][col] = blankCell
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(row, col int) Cell {
	if !s.inBounds(row, col) {
		return blankCell
	}
	return s.cells[row][col]
}

// DrawText writes text horizontally on dst starting at (row, col), one
// rune per cell. At most limit runes are drawn; a negative limit means no
// limit. Cells beyond the surface are clipped. It returns the number of
// runes drawn.
func DrawText(dst Surface, row, col int, text string, style Style, limit int) int {
	n := 0
	for _, r := range text {
		if limit >= 0 && n >= limit {
			break
		}
		dst.Draw(row, col+n, r, style)
		n++
	}
	return n
}

// DrawBorder outlines the edge of any surface with box-drawing characters.
func DrawBorder(dst Surface) {
	rows, cols := dst.Bounds()
	if rows < 2 || cols < 2 {
		return
	}

	dst.Draw(0, 0, '┌', StyleNormal)
	dst.Draw(0, cols-1, '┐', StyleNormal)
	dst.Draw(rows-1, 0, '└', StyleNormal)
	dst.Draw(rows-1, cols-1, '┘', StyleNormal)

	for x := 1; x < cols-1; x++ {
		dst.Draw(0, x, '─', StyleNormal)
		dst.Draw(rows-1, x, '─', StyleNormal)
	}
	for y := 1; y < rows-1; y++ {
		dst.Draw(y, 0, '│', StyleNormal)
		dst.Draw(y, cols-1, '│', StyleNormal)
	}
}

// String converts the screen buffer to a plain string, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.rows*s.cols + s.rows)

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.cols; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
