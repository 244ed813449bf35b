package game

import (
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// Explosion plays a fixed frame sequence centred on a point, one frame per
// tick.
type Explosion struct {
	centerRow, centerCol float64
	frames               []*sprite.Sprite
	next                 int
}

// NewExplosion creates an explosion centred at (row, col).
func NewExplosion(row, col float64, frames []*sprite.Sprite) *Explosion {
	return &Explosion{
		centerRow: row,
		centerCol: col,
		frames:    frames,
	}
}

func (e *Explosion) origin(sp *sprite.Sprite) (float64, float64) {
	h, w := sp.Size()
	return e.centerRow - float64(h/2), e.centerCol - float64(w/2)
}

// Step erases the previous frame and draws the next one.
func (e *Explosion) Step(w *engine.World) engine.StepResult {
	if e.next > 0 {
		prev := e.frames[e.next-1]
		row, col := e.origin(prev)
		w.Renderer.Draw(row, col, prev, true)
	}
	if e.next >= len(e.frames) {
		return engine.Finish()
	}

	sp := e.frames[e.next]
	row, col := e.origin(sp)
	w.Renderer.Draw(row, col, sp, false)
	e.next++
	return engine.Next()
}
