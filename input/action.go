package input

import (
	"github.com/lixenwraith/tileroom/core"
)

// Action is what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionReset
	ActionQuit
)

// actionRegistry maps keymap action names to actions; "none" unbinds
var actionRegistry = map[string]Action{
	"none":       ActionNone,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"attack":     ActionAttack,
	"reset":      ActionReset,
	"quit":       ActionQuit,
}

// ParseAction resolves a keymap action name
func ParseAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// Direction returns the movement direction of a move action, DirNone otherwise
func (a Action) Direction() core.Direction {
	switch a {
	case ActionMoveLeft:
		return core.DirLeft
	case ActionMoveRight:
		return core.DirRight
	case ActionMoveUp:
		return core.DirUp
	case ActionMoveDown:
		return core.DirDown
	default:
		return core.DirNone
	}
}
