// Package term runs a session directly on a tcell screen, without Bubble
// Tea. The scheduler owns the tick loop and key events arrive on their own
// goroutine.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

var styles = map[core.Style]tcell.Style{
	core.StyleNormal: tcell.StyleDefault,
	core.StyleDim:    tcell.StyleDefault.Dim(true),
	core.StyleBold:   tcell.StyleDefault.Bold(true),
}

// Screen adapts a tcell.Screen to the engine renderer. The extent is fixed
// when the Screen is created.
type Screen struct {
	screen     tcell.Screen
	rows, cols int
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	cols, rows := s.Size()
	return &Screen{screen: s, rows: rows, cols: cols}
}

// Extent returns the canvas size in rows and columns.
func (s *Screen) Extent() (int, int) {
	return s.rows, s.cols
}

// set writes one cell. Out-of-bounds coordinates and the bottom-right cell
// are ignored.
func (s *Screen) set(row, col int, r rune, style core.Style) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	if row == s.rows-1 && col == s.cols-1 {
		return
	}
	s.screen.SetContent(col, row, r, nil, styles[style])
}

// Draw paints a sprite with its top-left corner at (row, col).
func (s *Screen) Draw(row, col float64, sp *sprite.Sprite, erase bool) {
	top, left := core.CellOf(row), core.CellOf(col)
	sp.Glyphs(func(dy, dx int, r rune) {
		if erase {
			r = ' '
		}
		s.set(top+dy, left+dx, r, core.StyleNormal)
	})
}

// DrawChar paints a single styled rune.
func (s *Screen) DrawChar(row, col int, r rune, style core.Style) {
	s.set(row, col, r, style)
}

// Present flushes pending cells to the terminal.
func (s *Screen) Present() {
	s.screen.Show()
}

// Beep rings the terminal bell.
func (s *Screen) Beep() {
	//nolint:errcheck // The bell is cosmetic
	s.screen.Beep()
}
