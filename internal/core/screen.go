package core

import (
	"strings"

	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// Cell is one styled character on the screen.
type Cell struct {
	Rune  rune
	Style Style
}

// Screen is a persistent 2D cell buffer that tasks draw into between ticks.
// Drawing goes to a back buffer; Present copies it to the front buffer that
// the platform displays, so a frame is never shown half-drawn.
type Screen struct {
	rows  int
	cols  int
	back  [][]Cell
	front [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows:  rows,
		cols:  cols,
		back:  allocate(rows, cols),
		front: allocate(rows, cols),
	}
	s.Clear()
	return s
}

// allocate creates cell storage.
func allocate(rows, cols int) [][]Cell {
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
	}
	return cells
}

// Extent returns the screen size in rows and columns.
func (s *Screen) Extent() (int, int) {
	return s.rows, s.cols
}

// Clear fills both buffers with unstyled spaces.
func (s *Screen) Clear() {
	for _, buf := range [][][]Cell{s.back, s.front} {
		for y := range buf {
			for x := range buf[y] {
				buf[y][x] = Cell{Rune: ' '}
			}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates and the bottom-right cell are silently ignored;
// writing the last cell scrolls many terminals.
func (s *Screen) Set(row, col int, r rune, style Style) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	if row == s.rows-1 && col == s.cols-1 {
		return
	}
	s.back[row][col] = Cell{Rune: r, Style: style}
}

// Get returns the drawn (not yet presented) rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(row, col int) rune {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return ' '
	}
	return s.back[row][col].Rune
}

// GetCell returns the presented cell at the given position.
func (s *Screen) GetCell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{Rune: ' '}
	}
	return s.front[row][col]
}

// Draw paints a sprite with its top-left corner at (row, col), rounded to
// the nearest cell. Spaces in the sprite are transparent. With erase set the
// sprite's glyph cells are blanked instead.
func (s *Screen) Draw(row, col float64, sp *sprite.Sprite, erase bool) {
	top, left := CellOf(row), CellOf(col)
	sp.Glyphs(func(dy, dx int, r rune) {
		if erase {
			r = ' '
		}
		s.Set(top+dy, left+dx, r, StyleNormal)
	})
}

// DrawChar paints a single styled rune.
func (s *Screen) DrawChar(row, col int, r rune, style Style) {
	s.Set(row, col, r, style)
}

// Present publishes the back buffer.
func (s *Screen) Present() {
	for y := range s.back {
		copy(s.front[y], s.back[y])
	}
}

// String converts the presented buffer to plain text.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows + s.rows)

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.cols; x++ {
			sb.WriteRune(s.front[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified presented row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	var sb strings.Builder
	for _, c := range s.front[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
