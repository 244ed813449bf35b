package game

import (
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/physics"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// CraftOptions configures the player's craft.
type CraftOptions struct {
	Frames     []*sprite.Sprite // Distinct craft frames
	Animation  []int            // Frame index per tick, cycled
	Banner     *sprite.Sprite   // Shown when the craft is lost
	Easing     physics.Easing
	RowOffset  float64 // Cells per unit of row speed
	ColOffset  float64 // Cells per unit of column speed
	Projectile config.ProjectileConfig

	// CanFire reports whether weapons are available in a year.
	// Nil means never.
	CanFire func(year int) bool
}

// Craft is the player's ship.
type Craft struct {
	opts               CraftOptions
	row, col           float64
	rowSpeed, colSpeed float64
	anim               int
	drawn              *sprite.Sprite
	drawnRow, drawnCol float64
	shots              int
}

// NewCraft creates a craft with its top-left corner at (row, col).
func NewCraft(row, col float64, opts CraftOptions) *Craft {
	if len(opts.Animation) == 0 {
		opts.Animation = make([]int, len(opts.Frames))
		for i := range opts.Animation {
			opts.Animation[i] = i
		}
	}
	return &Craft{
		opts: opts,
		row:  row,
		col:  col,
	}
}

// Position returns the craft's top-left corner.
func (c *Craft) Position() (float64, float64) {
	return c.row, c.col
}

// Velocity returns the current row and column speed.
func (c *Craft) Velocity() (float64, float64) {
	return c.rowSpeed, c.colSpeed
}

// Shots returns how many projectiles the craft has fired.
func (c *Craft) Shots() int {
	return c.shots
}

// Size returns the bounding box of the craft frames.
func (c *Craft) Size() (int, int) {
	var h, w int
	for _, f := range c.opts.Frames {
		fh, fw := f.Size()
		h, w = max(h, fh), max(w, fw)
	}
	return h, w
}

// Rect returns the cells covered by the craft at its current position.
func (c *Craft) Rect() core.Rect {
	h, w := c.Size()
	return core.NewRect(core.CellOf(c.row), core.CellOf(c.col), h, w)
}

func (c *Craft) nextFrame() *sprite.Sprite {
	idx := c.opts.Animation[c.anim%len(c.opts.Animation)]
	c.anim++
	if idx >= len(c.opts.Frames) {
		idx = len(c.opts.Frames) - 1
	}
	return c.opts.Frames[idx]
}

func (c *Craft) erase(w *engine.World) {
	if c.drawn != nil {
		w.Renderer.Draw(c.drawnRow, c.drawnCol, c.drawn, true)
		c.drawn = nil
	}
}

// Step checks for a collision, applies the controls and redraws the craft.
func (c *Craft) Step(w *engine.World) engine.StepResult {
	if w.Obstacles.HasCollision(c.Rect()) {
		c.erase(w)
		w.Log.Info("craft lost", "row", c.row, "col", c.col, "year", w.Year)
		return engine.Finish(NewGameOverBanner(c.opts.Banner))
	}

	var spawn []engine.Task
	controls := w.Controls
	c.rowSpeed, c.colSpeed = c.opts.Easing.UpdateVelocity(c.rowSpeed, c.colSpeed, controls)

	h, width := c.Size()
	if controls.Fire && c.opts.CanFire != nil && c.opts.CanFire(w.Year) {
		shot := NewProjectile(c.row, c.col+float64(width/2), c.opts.Projectile.RowSpeed, c.opts.Projectile.ColumnSpeed)
		spawn = append(spawn, shot)
		c.shots++
		if b, ok := w.Renderer.(engine.Beeper); ok {
			b.Beep()
		}
	}

	c.erase(w)

	c.row += c.rowSpeed * c.opts.RowOffset
	c.col += c.colSpeed * c.opts.ColOffset
	c.row = core.ClampF(c.row, 1, max(float64(w.Rows-h-1), 1))
	c.col = core.ClampF(c.col, 1, max(float64(w.Cols-width-1), 1))

	frame := c.nextFrame()
	w.Renderer.Draw(c.row, c.col, frame, false)
	c.drawn, c.drawnRow, c.drawnCol = frame, c.row, c.col

	return engine.Next(spawn...)
}
