package game

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// BlinkPhase is one step of a star's blink cycle.
type BlinkPhase struct {
	Style core.Style
	Ticks int
}

// DefaultBlinkPhases is the dim, normal, bold, normal cycle.
var DefaultBlinkPhases = []BlinkPhase{
	{Style: core.StyleDim, Ticks: 20},
	{Style: core.StyleNormal, Ticks: 3},
	{Style: core.StyleBold, Ticks: 5},
	{Style: core.StyleNormal, Ticks: 3},
}

// Blink is a background star cycling through its phases forever.
type Blink struct {
	row, col int
	symbol   rune
	phases   []BlinkPhase
	phase    int
	wait     int
}

// NewBlink creates a star at (row, col). The first phase is drawn after
// offset idle ticks, which keeps stars out of sync with each other.
func NewBlink(row, col int, symbol rune, offset int, phases []BlinkPhase) *Blink {
	if len(phases) == 0 {
		phases = DefaultBlinkPhases
	}
	return &Blink{
		row:    row,
		col:    col,
		symbol: symbol,
		phases: phases,
		wait:   max(offset, 0),
	}
}

// Position returns the star's cell.
func (b *Blink) Position() (int, int) {
	return b.row, b.col
}

// Step draws the next phase when the current one has run out.
func (b *Blink) Step(w *engine.World) engine.StepResult {
	if b.wait > 0 {
		b.wait--
		return engine.Next()
	}

	p := b.phases[b.phase]
	w.Renderer.DrawChar(b.row, b.col, b.symbol, p.Style)
	b.wait = p.Ticks - 1
	b.phase = (b.phase + 1) % len(b.phases)
	return engine.Next()
}
