package game

import (
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// HazardSpawner releases garbage at a rate set by the current year.
type HazardSpawner struct {
	library    *sprite.Library
	difficulty *config.DifficultyManager
	hazard     config.HazardConfig
	wait       int
	spawned    int
}

// NewHazardSpawner creates the spawner.
func NewHazardSpawner(lib *sprite.Library, d *config.DifficultyManager, cfg config.HazardConfig) *HazardSpawner {
	return &HazardSpawner{
		library:    lib,
		difficulty: d,
		hazard:     cfg,
	}
}

// Spawned returns how many hazards have been released.
func (s *HazardSpawner) Spawned() int {
	return s.spawned
}

// Step waits out the current delay, then releases one hazard at a random
// column. Nothing spawns before the first year of the delay table.
func (s *HazardSpawner) Step(w *engine.World) engine.StepResult {
	if s.wait > 0 {
		s.wait--
		return engine.Next()
	}

	delay, ok := s.difficulty.SpawnDelay(w.Year)
	if !ok {
		return engine.Next()
	}

	sp := s.library.RandomHazard(w.Rand)
	col := 1 + w.Rand.Intn(max(w.Cols-2, 1))
	h := NewHazard(sp, s.hazard.StartRow, float64(col), s.hazard.Speed, s.library.ExplosionFrames())

	s.wait = delay - 1
	s.spawned++
	return engine.Next(h)
}
