package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyConfigFile is the on-disk layout:
//
//	[keys]
//	Up = "move_up"
//	[runes]
//	x = "attack"
//	space = "none"
type keyConfigFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown sections %v", undecoded)
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(raw.Keys)),
		Runes: make(map[rune]Action, len(raw.Runes)),
	}

	for name, actionName := range raw.Keys {
		key, ok := parseKeyName(name)
		if !ok {
			return nil, fmt.Errorf("section [keys]: unknown key %q", name)
		}
		a, ok := ParseAction(actionName)
		if !ok {
			return nil, fmt.Errorf("section [keys]: %s: unknown action %q", name, actionName)
		}
		kt.Keys[key] = a
	}

	for name, actionName := range raw.Runes {
		r, ok := parseRuneName(name)
		if !ok {
			return nil, fmt.Errorf("section [runes]: invalid key %q", name)
		}
		a, ok := ParseAction(actionName)
		if !ok {
			return nil, fmt.Errorf("section [runes]: %s: unknown action %q", name, actionName)
		}
		kt.Runes[r] = a
	}

	return kt, nil
}

// parseKeyName matches tcell key names case-insensitively ("Up", "Esc", "Ctrl-R")
func parseKeyName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

func parseRuneName(name string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, true
}
