package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// World is the state shared by every task of one session. It is passed to
// each Step explicitly; there is no package-level game state.
type World struct {
	Rows, Cols int

	Obstacles *Registry
	Renderer  Renderer
	Rand      *rand.Rand
	Log       *log.Logger

	// Controls holds the input polled at the start of the current tick.
	Controls core.Controls

	// Year is the difficulty clock value.
	Year int

	// Tick counts completed ticks.
	Tick int

	// Destroyed counts hazards shot down.
	Destroyed int

	// GameOver is set once the craft has been lost.
	GameOver bool

	// Hits recorded during the current tick, and hits published by the
	// previous drain.
	recorded  map[ObstacleID]struct{}
	published map[ObstacleID]struct{}
}

// NewWorld creates a world sized to the renderer's extent.
// A nil logger discards output.
func NewWorld(r Renderer, rng *rand.Rand, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rows, cols := r.Extent()
	return &World{
		Rows:      rows,
		Cols:      cols,
		Obstacles: NewRegistry(),
		Renderer:  r,
		Rand:      rng,
		Log:       logger,
		recorded:  make(map[ObstacleID]struct{}),
		published: make(map[ObstacleID]struct{}),
	}
}

// MarkHit records that the obstacle was struck this tick. The owning task
// sees the mark after the end-of-tick drain.
func (w *World) MarkHit(id ObstacleID) {
	w.recorded[id] = struct{}{}
}

// WasHit reports whether the obstacle's hit mark has been published.
func (w *World) WasHit(id ObstacleID) bool {
	_, ok := w.published[id]
	return ok
}

// ClearHit removes every mark for the obstacle.
func (w *World) ClearHit(id ObstacleID) {
	delete(w.published, id)
	delete(w.recorded, id)
}

// PendingHits returns the number of recorded and published marks.
func (w *World) PendingHits() (recorded, published int) {
	return len(w.recorded), len(w.published)
}

// drainHits publishes this tick's marks and drops the previous ones.
// Marks therefore live for exactly one tick after they are published.
func (w *World) drainHits() {
	w.published, w.recorded = w.recorded, w.published
	clear(w.recorded)
}

// Interior returns the drawable area inside the one-cell border.
func (w *World) Interior() core.Rect {
	return core.NewRect(1, 1, w.Rows-2, w.Cols-2)
}
