// Package keymap parses key chords and maps them to actions.
package keymap

import (
	"runtime"
	"strings"

	"codeshell/internal/errors"
	"codeshell/pkg/types"
)

// cmdModifier is what "Cmd" means on this platform.
var cmdModifier = func() types.Modifiers {
	if runtime.GOOS == "darwin" {
		return types.ModMacCmd
	}
	return types.ModCommand
}()

var modifierNames = map[string]types.Modifiers{
	"Ctrl":  types.ModCtrl,
	"Alt":   types.ModAlt,
	"Shift": types.ModShift,
}

// ParseModifier resolves one of Ctrl, Alt, Shift or Cmd.
func ParseModifier(name string) (types.Modifiers, bool) {
	if name == "Cmd" {
		return cmdModifier, true
	}
	m, ok := modifierNames[name]
	return m, ok
}

// ParseKey resolves a key name such as "A", "Up", "Plus" or "F12".
func ParseKey(name string) (types.Key, bool) {
	return types.KeyByName(name)
}

// ParseChord parses "[Mod+[Mod+[Mod+]]]Key".
func ParseChord(text string) (types.KeyChord, error) {
	tokens := strings.Split(text, "+")
	if len(tokens) > 4 {
		return types.KeyChord{}, errors.NewParseError("too many chord tokens", text, errors.ChordParseFailed, nil)
	}

	key, ok := ParseKey(tokens[len(tokens)-1])
	if !ok {
		return types.KeyChord{}, errors.NewParseError("unknown key", text, errors.ChordParseFailed, nil)
	}

	var mods types.Modifiers
	for _, tok := range tokens[:len(tokens)-1] {
		m, ok := ParseModifier(tok)
		if !ok {
			return types.KeyChord{}, errors.NewParseError("unknown modifier", text, errors.ChordParseFailed, nil)
		}
		mods |= m
	}
	return types.Chord(mods, key), nil
}

// MustParseChord is ParseChord for literals known to be valid.
func MustParseChord(text string) types.KeyChord {
	c, err := ParseChord(text)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatChord renders a chord as Ctrl+Alt+Shift+Cmd+Key.
func FormatChord(c types.KeyChord) string {
	var parts []string
	if c.Modifiers.Has(types.ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if c.Modifiers.Has(types.ModAlt) {
		parts = append(parts, "Alt")
	}
	if c.Modifiers.Has(types.ModShift) {
		parts = append(parts, "Shift")
	}
	if c.Modifiers&(types.ModMacCmd|types.ModCommand) != 0 {
		parts = append(parts, "Cmd")
	}
	parts = append(parts, c.Key.Name())
	return strings.Join(parts, "+")
}
