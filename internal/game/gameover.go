package game

import (
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// GameOverBanner shows the banner in the middle of the field until the
// session ends.
type GameOverBanner struct {
	sprite  *sprite.Sprite
	started bool
}

// NewGameOverBanner creates the banner task.
func NewGameOverBanner(sp *sprite.Sprite) *GameOverBanner {
	return &GameOverBanner{sprite: sp}
}

// Step draws the banner. The first step ends the game.
func (g *GameOverBanner) Step(w *engine.World) engine.StepResult {
	if !g.started {
		g.started = true
		w.GameOver = true
		w.Log.Info("game over", "year", w.Year, "destroyed", w.Destroyed, "tick", w.Tick)
	}

	h, wd := g.sprite.Size()
	row := float64((w.Rows - h) / 2)
	col := float64((w.Cols - wd) / 2)
	w.Renderer.Draw(row, col, g.sprite, false)
	return engine.Next()
}
