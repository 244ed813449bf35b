package engine

import (
	"context"
	"fmt"
	"time"
)

// DefaultInterval is the pause between two ticks.
const DefaultInterval = 100 * time.Millisecond

// Scheduler owns the live task list and drives every task one step per tick.
// It is not safe for concurrent use; one goroutine runs all ticks.
type Scheduler struct {
	world *World
	input InputSource
	tasks []Task
	steps int // Steps executed during the last tick
}

// NewScheduler creates a scheduler for w. input may be nil.
func NewScheduler(w *World, input InputSource) *Scheduler {
	return &Scheduler{
		world: w,
		input: input,
	}
}

// Add appends tasks to the live list. They are stepped from the next tick.
func (s *Scheduler) Add(tasks ...Task) {
	for _, t := range tasks {
		if t == nil {
			panic("engine: nil task added")
		}
	}
	s.tasks = append(s.tasks, tasks...)
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the live tasks in stepping order.
func (s *Scheduler) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Steps returns how many tasks were stepped by the last Tick.
func (s *Scheduler) Steps() int {
	return s.steps
}

// World returns the world the scheduler drives.
func (s *Scheduler) World() *World {
	return s.world
}

// Tick advances the session by one tick:
// poll input, step every live task in insertion order, retire finished
// tasks, admit spawned tasks, drain hit marks, present once.
// A panicking task is a defect and is not recovered.
func (s *Scheduler) Tick() {
	w := s.world
	if s.input != nil {
		w.Controls = s.input.Poll()
	}

	snapshot := s.tasks
	live := s.tasks[:0]
	var spawned []Task

	for _, t := range snapshot {
		res := t.Step(w)
		for _, child := range res.Spawn {
			if child == nil {
				panic(fmt.Sprintf("engine: %T spawned a nil task", t))
			}
		}
		spawned = append(spawned, res.Spawn...)

		// live shares snapshot's backing array but never overtakes the
		// read position.
		if res.Status != Done {
			live = append(live, t)
		}
	}
	s.steps = len(snapshot)
	clear(snapshot[len(live):])

	retired := len(snapshot) - len(live)
	s.tasks = append(live, spawned...)

	w.drainHits()
	w.Tick++
	w.Renderer.Present()

	if retired > 0 || len(spawned) > 0 {
		w.Log.Debug("tick", "tick", w.Tick, "live", len(s.tasks), "spawned", len(spawned), "retired", retired)
	}
}

// Run ticks every interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Tick()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
