package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// runeActions binds printable keys; WASD and hjkl steer, space fires.
var runeActions = map[rune]core.Action{
	'w': core.ActionUp,
	'k': core.ActionUp,
	's': core.ActionDown,
	'j': core.ActionDown,
	'a': core.ActionLeft,
	'h': core.ActionLeft,
	'd': core.ActionRight,
	'l': core.ActionRight,
	' ': core.ActionFire,
	'q': core.ActionQuit,
}

// mapKey translates a tcell key event to a ship control action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return runeActions[ev.Rune()]
	}
	return core.ActionNone
}
