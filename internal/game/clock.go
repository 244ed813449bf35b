package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// hudCol is where the year line starts on the bottom border.
const hudCol = 2

// DifficultyClock advances the year and shows it on the bottom border
// together with the latest milestone.
type DifficultyClock struct {
	difficulty *config.DifficultyManager
	ticks      int
	shown      int
}

// NewDifficultyClock creates the clock.
func NewDifficultyClock(d *config.DifficultyManager) *DifficultyClock {
	return &DifficultyClock{difficulty: d}
}

// HUDText returns the line shown for a year.
func (c *DifficultyClock) HUDText(year int) string {
	text := fmt.Sprintf("Year %d", year)
	if phrase := c.difficulty.Phrase(year); phrase != "" {
		text += ": " + phrase
	}
	return text
}

// Step counts one tick of the current year. The clock stops once the game
// is over.
func (c *DifficultyClock) Step(w *engine.World) engine.StepResult {
	if c.difficulty.IsEnabled() && !w.GameOver {
		c.ticks++
		if c.ticks >= c.difficulty.TicksPerYear() {
			c.ticks = 0
			w.Year++
			if phrase := c.difficulty.Phrase(w.Year); phrase != c.difficulty.Phrase(w.Year-1) {
				w.Log.Info("milestone", "year", w.Year, "phrase", phrase)
			} else {
				w.Log.Debug("year", "year", w.Year)
			}
		}
	}

	text := " " + c.HUDText(w.Year) + " "
	n := drawText(w.Renderer, w.Rows-1, hudCol, text, core.StyleBold)
	if n < c.shown {
		// Restore the border under a shorter line.
		drawText(w.Renderer, w.Rows-1, hudCol+n, strings.Repeat("─", c.shown-n), core.StyleNormal)
	}
	c.shown = n
	return engine.Next()
}
