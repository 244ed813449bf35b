package game

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// DefaultHazardSpeed is the descent in rows per tick.
const DefaultHazardSpeed = 0.5

// Hazard is a piece of garbage falling from the top of the field. It owns
// one obstacle in the registry for as long as it is alive.
type Hazard struct {
	sprite    *sprite.Sprite
	explosion []*sprite.Sprite
	row, col  float64
	speed     float64
	obstacle  *engine.Obstacle
	drawn     bool
	drawnRow  float64
}

// NewHazard creates a hazard entering at startRow. The column is clamped
// into the field on the first step. explosion may be empty, in which case a
// destroyed hazard just disappears.
func NewHazard(sp *sprite.Sprite, startRow, column, speed float64, explosion []*sprite.Sprite) *Hazard {
	if speed <= 0 {
		speed = DefaultHazardSpeed
	}
	return &Hazard{
		sprite:    sp,
		explosion: explosion,
		row:       startRow,
		col:       column,
		speed:     speed,
	}
}

// Obstacle returns the registered obstacle, or nil before the first step.
func (h *Hazard) Obstacle() *engine.Obstacle {
	return h.obstacle
}

// Row returns the row the hazard will be drawn at next.
func (h *Hazard) Row() float64 {
	return h.row
}

// Column returns the hazard's column.
func (h *Hazard) Column() float64 {
	return h.col
}

// Step moves the hazard one increment down the field.
func (h *Hazard) Step(w *engine.World) engine.StepResult {
	height, width := h.sprite.Size()

	if h.obstacle == nil {
		maxCol := float64(w.Cols - width - 1)
		h.col = core.ClampF(h.col, 1, max(maxCol, 1))
		h.obstacle = w.Obstacles.Register(h.row, h.col, height, width)
	}

	if h.drawn {
		w.Renderer.Draw(h.drawnRow, h.col, h.sprite, true)
		h.drawn = false
	}

	if w.WasHit(h.obstacle.ID) {
		w.Obstacles.Unregister(h.obstacle)
		w.ClearHit(h.obstacle.ID)
		w.Destroyed++
		w.Log.Debug("hazard destroyed", "sprite", h.sprite.Name(), "id", h.obstacle.ID)

		if len(h.explosion) == 0 {
			return engine.Finish()
		}
		centerRow, centerCol := h.obstacle.Rect().Center()
		return engine.Finish(NewExplosion(float64(centerRow), float64(centerCol), h.explosion))
	}

	if core.CellOf(h.row)+height > w.Rows-1 {
		w.Obstacles.Unregister(h.obstacle)
		return engine.Finish()
	}

	w.Renderer.Draw(h.row, h.col, h.sprite, false)
	h.drawn = true
	h.drawnRow = h.row
	h.obstacle.Row = h.row
	h.obstacle.Column = h.col

	h.row += h.speed
	return engine.Next()
}
