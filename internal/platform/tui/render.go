package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// cellStyles maps core.Style to lipgloss styles.
var cellStyles = map[core.Style]lipgloss.Style{
	core.StyleNormal: lipgloss.NewStyle(),
	core.StyleDim:    lipgloss.NewStyle().Faint(true),
	core.StyleBold:   lipgloss.NewStyle().Bold(true),
}

// RenderScreen converts the presented Screen buffer to a styled string.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	rows, cols := s.Extent()

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(rows*cols*2 + rows)

	for y := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			start := s.GetCell(y, x).Style

			var run strings.Builder
			for x < cols {
				cell := s.GetCell(y, x)
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
