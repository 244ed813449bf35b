package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows tasks to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space
	ActionPause          // P
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Controls is the net player input for one tick.
type Controls struct {
	RowDir int  // -1 up, 0 none, 1 down
	ColDir int  // -1 left, 0 none, 1 right
	Fire   bool // Fire requested at least once
}

// InputFrame accumulates key actions between two polls.
// Each axis keeps the last direction observed.
type InputFrame struct {
	controls Controls
}

// Set records an action. Non-movement actions other than Fire are ignored.
func (f *InputFrame) Set(a Action) {
	switch a {
	case ActionUp:
		f.controls.RowDir = -1
	case ActionDown:
		f.controls.RowDir = 1
	case ActionLeft:
		f.controls.ColDir = -1
	case ActionRight:
		f.controls.ColDir = 1
	case ActionFire:
		f.controls.Fire = true
	}
}

// Controls returns the accumulated controls.
func (f InputFrame) Controls() Controls {
	return f.controls
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.controls = Controls{}
}

// InputBuffer is an InputFrame shared between a key-event producer and the
// tick loop. Poll never blocks on input.
type InputBuffer struct {
	mu    sync.Mutex
	frame InputFrame
}

// NewInputBuffer creates an empty input buffer.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{}
}

// Press records an action.
func (b *InputBuffer) Press(a Action) {
	b.mu.Lock()
	b.frame.Set(a)
	b.mu.Unlock()
}

// Poll returns everything pressed since the previous poll and resets the buffer.
func (b *InputBuffer) Poll() Controls {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.frame.Controls()
	b.frame.Clear()
	return c
}
