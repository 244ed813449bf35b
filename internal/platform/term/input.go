package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// MapKey translates a tcell key event to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func MapKey(ev *tcell.EventKey) (core.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return core.ActionQuit, true
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit, true
		case 'w':
			return core.ActionUp, false
		case 's':
			return core.ActionDown, false
		case 'a':
			return core.ActionLeft, false
		case 'd':
			return core.ActionRight, false
		case ' ':
			return core.ActionFire, false
		}
	}
	return core.ActionNone, false
}

// pumpInput feeds key events into buf until the screen is finalised or ctx
// ends. quit is called when the player asks to leave.
func pumpInput(ctx context.Context, s tcell.Screen, buf *core.InputBuffer, quit func()) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return // Screen finalised
		}
		if ctx.Err() != nil {
			return
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		action, isQuit := MapKey(key)
		if isQuit {
			quit()
			return
		}
		if action != core.ActionNone {
			buf.Press(action)
		}
	}
}
