package game

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// Projectile is a shot travelling in a straight line until it leaves the
// field or strikes garbage.
type Projectile struct {
	row, col           float64
	rowSpeed, colSpeed float64
	symbol             rune
	drawn              bool
}

// NewProjectile creates a shot at (row, col).
func NewProjectile(row, col, rowSpeed, colSpeed float64) *Projectile {
	symbol := '|'
	if colSpeed != 0 {
		symbol = '-'
	}
	return &Projectile{
		row:      row,
		col:      col,
		rowSpeed: rowSpeed,
		colSpeed: colSpeed,
		symbol:   symbol,
	}
}

// Position returns the shot's current position.
func (p *Projectile) Position() (float64, float64) {
	return p.row, p.col
}

// Symbol returns the glyph the shot is drawn with.
func (p *Projectile) Symbol() rune {
	return p.symbol
}

// Step advances the shot one increment. A struck obstacle is only marked;
// the owning hazard sees the mark after the end-of-tick drain.
func (p *Projectile) Step(w *engine.World) engine.StepResult {
	if p.drawn {
		w.Renderer.DrawChar(core.CellOf(p.row), core.CellOf(p.col), ' ', core.StyleNormal)
		p.drawn = false
	}

	if !(1 < p.row && p.row < float64(w.Rows-1) && 1 < p.col && p.col < float64(w.Cols-1)) {
		return engine.Finish()
	}

	fromRow, fromCol := core.CellOf(p.row), core.CellOf(p.col)
	p.row += p.rowSpeed
	p.col += p.colSpeed

	// Test every cell crossed this step so falling garbage cannot slip
	// between two positions of the shot.
	row, col := core.CellOf(p.row), core.CellOf(p.col)
	path := core.NewRect(min(fromRow, row), min(fromCol, col), abs(row-fromRow)+1, abs(col-fromCol)+1)
	hits := w.Obstacles.Collisions(path)
	if len(hits) > 0 {
		for _, o := range hits {
			w.MarkHit(o.ID)
		}
		// Parked on the top boundary: the next step retires the shot.
		p.row = 1
		return engine.Next()
	}

	if !w.Interior().Contains(row, col) {
		return engine.Finish()
	}
	w.Renderer.DrawChar(row, col, p.symbol, core.StyleBold)
	p.drawn = true
	return engine.Next()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
