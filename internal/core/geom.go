// Package core provides fundamental types and utilities shared by the engine,
// the game tasks and the platform backends. It has no terminal dependencies so
// game logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned block of terminal cells used for collision
// detection. Row grows downwards, Col grows to the right.
type Rect struct {
	Row, Col      int // Top-left cell
	Height, Width int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(row, col, height, width int) Rect {
	return Rect{Row: row, Col: col, Height: height, Width: width}
}

// Bottom returns the row just below the last row of the rectangle.
func (r Rect) Bottom() int {
	return r.Row + r.Height
}

// Right returns the column just after the last column of the rectangle.
func (r Rect) Right() int {
	return r.Col + r.Width
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Height <= 0 || r.Width <= 0
}

// Intersects returns true if the two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.Col >= other.Right() || other.Col >= r.Right() {
		return false
	}
	if r.Row >= other.Bottom() || other.Row >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (row, col) is inside this rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Bottom() && col >= r.Col && col < r.Right()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.Row + r.Height/2, r.Col + r.Width/2
}

// CellOf converts a real-valued coordinate to the terminal cell it is drawn in.
// Halves round away from zero.
func CellOf(v float64) int {
	return int(math.Round(v))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
