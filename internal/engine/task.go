// Package engine implements the cooperative task scheduler and the shared
// world that tasks read and mutate between their steps.
//
// A task is a state machine advanced one Step per tick. Waiting N ticks is
// expressed as N steps that return Continue; a task never blocks.
package engine

// Status tells the scheduler whether a task stays live after a step.
type Status int

const (
	Continue Status = iota
	Done
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Task.Step after each tick.
// Spawned tasks receive their first step on the next tick.
type StepResult struct {
	Status Status
	Spawn  []Task
}

// Task is one resumable unit of per-tick behavior.
type Task interface {
	Step(w *World) StepResult
}

// Next keeps the task live and optionally spawns new tasks.
func Next(spawn ...Task) StepResult {
	return StepResult{Status: Continue, Spawn: spawn}
}

// Finish retires the task and optionally spawns new tasks.
func Finish(spawn ...Task) StepResult {
	return StepResult{Status: Done, Spawn: spawn}
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(w *World) StepResult

// Step calls f(w).
func (f TaskFunc) Step(w *World) StepResult {
	return f(w)
}
