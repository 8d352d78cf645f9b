package core

import (
	"strings"
	"unicode/utf8"
)

// Frame is an immutable multi-line glyph block: a ship frame, a piece of
// garbage, an explosion phase or a banner. Spaces inside a frame are
// transparent when drawn.
type Frame struct {
	Name  string
	lines []string
}

// NewFrame splits text into lines and builds a frame.
// A single trailing newline is not counted as an empty line.
func NewFrame(name, text string) Frame {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return Frame{Name: name, lines: strings.Split(text, "\n")}
}

// Lines returns the frame rows.
func (f Frame) Lines() []string {
	return f.lines
}

// Size returns the frame bounds as (height, width) in cells.
func (f Frame) Size() (int, int) {
	width := 0
	for _, line := range f.lines {
		width = Max(width, utf8.RuneCountInString(line))
	}
	return len(f.lines), width
}

// Empty reports whether the frame has no visible glyphs.
func (f Frame) Empty() bool {
	for _, line := range f.lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// DrawFrame draws a frame with its top-left corner at (row, col).
// Fractional coordinates are rounded to the nearest cell. Cells outside the
// surface are clipped, and the bottom-right corner cell is never written
// because some terminals scroll when it is.
func DrawFrame(dst Surface, row, col float64, f Frame, style Style) {
	paintFrame(dst, row, col, f, func(y, x int, r rune) {
		dst.Draw(y, x, r, style)
	})
}

// EraseFrame blanks every cell DrawFrame would have drawn.
func EraseFrame(dst Surface, row, col float64, f Frame) {
	paintFrame(dst, row, col, f, func(y, x int, _ rune) {
		dst.Erase(y, x)
	})
}

func paintFrame(dst Surface, row, col float64, f Frame, paint func(y, x int, r rune)) {
	rows, cols := dst.Bounds()
	startRow, startCol := CellOf(row), CellOf(col)

	for dy, line := range f.lines {
		y := startRow + dy
		if y < 0 {
			continue
		}
		if y >= rows {
			break
		}
		x := startCol
		for _, r := range line {
			if x >= cols {
				break
			}
			if x >= 0 && r != ' ' && !(y == rows-1 && x == cols-1) {
				paint(y, x, r)
			}
			x++
		}
	}
}
