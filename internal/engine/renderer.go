package engine

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// Renderer paints into the terminal canvas. Writes outside the extent, and
// to the bottom-right cell, are silent no-ops.
type Renderer interface {
	// Draw paints sp with its top-left corner at (row, col), rounded to the
	// nearest cell. Spaces are transparent; erase blanks the glyph cells.
	Draw(row, col float64, sp *sprite.Sprite, erase bool)

	// DrawChar paints one styled rune.
	DrawChar(row, col int, r rune, style core.Style)

	// Present shows everything drawn since the previous Present.
	Present()

	// Extent returns the canvas size.
	Extent() (rows, cols int)
}

// Beeper is implemented by renderers that can ring the terminal bell.
type Beeper interface {
	Beep()
}

// InputSource is polled once per tick and never blocks.
type InputSource interface {
	Poll() core.Controls
}
