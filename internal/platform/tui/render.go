package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// cellStyles maps core.Style flags to lipgloss styles.
var cellStyles = map[core.Style]lipgloss.Style{
	core.StyleNormal:               lipgloss.NewStyle(),
	core.StyleDim:                  lipgloss.NewStyle().Faint(true),
	core.StyleBold:                 lipgloss.NewStyle().Bold(true),
	core.StyleDim | core.StyleBold: lipgloss.NewStyle().Bold(true),
}

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are rendered as one run.
func RenderScreen(s *core.Screen) string {
	rows, cols := s.Bounds()

	var sb strings.Builder
	sb.Grow(rows*cols*2 + rows)

	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			start := s.Get(y, x).Style

			var run strings.Builder
			for x < cols {
				cell := s.Get(y, x)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[start]
			if !ok {
				style = cellStyles[core.StyleNormal]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
