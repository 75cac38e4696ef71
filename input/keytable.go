package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable keys
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows, hjkl and wasd move
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyEnter:  ActionAttack,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlR:  ActionReset,
		},
		Runes: map[rune]Action{
			'h': ActionMoveLeft,
			'j': ActionMoveDown,
			'k': ActionMoveUp,
			'l': ActionMoveRight,
			'a': ActionMoveLeft,
			's': ActionMoveDown,
			'w': ActionMoveUp,
			'd': ActionMoveRight,
			' ': ActionAttack,
			'r': ActionReset,
			'q': ActionQuit,
		},
	}
}

// Merge applies non-nil override entries; ActionNone entries unbind
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = a
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
