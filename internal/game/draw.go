// Package game implements the space garbage session: the task variants that
// run on the engine scheduler and the startup wiring that creates them.
package game

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// drawText writes text one rune per cell starting at (row, col).
func drawText(r engine.Renderer, row, col int, text string, style core.Style) int {
	n := 0
	for _, ch := range text {
		r.DrawChar(row, col+n, ch, style)
		n++
	}
	return n
}

// drawBorder frames the whole canvas with a one-cell border.
func drawBorder(r engine.Renderer) {
	rows, cols := r.Extent()
	if rows < 2 || cols < 2 {
		return
	}

	r.DrawChar(0, 0, '┌', core.StyleNormal)
	r.DrawChar(0, cols-1, '┐', core.StyleNormal)
	r.DrawChar(rows-1, 0, '└', core.StyleNormal)
	r.DrawChar(rows-1, cols-1, '┘', core.StyleNormal)

	for col := 1; col < cols-1; col++ {
		r.DrawChar(0, col, '─', core.StyleNormal)
		r.DrawChar(rows-1, col, '─', core.StyleNormal)
	}
	for row := 1; row < rows-1; row++ {
		r.DrawChar(row, 0, '│', core.StyleNormal)
		r.DrawChar(row, cols-1, '│', core.StyleNormal)
	}
}
