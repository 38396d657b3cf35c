package tui

import (
	"strings"
	"unicode"

	"codeshell/internal/app"
	"codeshell/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
)

var teaKeys = map[string]types.Key{
	"up": types.KeyUp, "down": types.KeyDown, "left": types.KeyLeft, "right": types.KeyRight,
	"esc": types.KeyEscape, "tab": types.KeyTab, "backspace": types.KeyBackspace,
	"enter": types.KeyEnter, " ": types.KeySpace, "insert": types.KeyInsert,
	"delete": types.KeyDelete, "home": types.KeyHome, "end": types.KeyEnd,
	"pgup": types.KeyPageUp, "pgdown": types.KeyPageDown,
	"-": types.KeyMinus, "_": types.KeyMinus, "+": types.KeyPlus, "=": types.KeyPlus,
}

var teaModifiers = []struct {
	prefix string
	mod    types.Modifiers
}{
	{"ctrl+", types.ModCtrl},
	{"alt+", types.ModAlt},
	{"shift+", types.ModShift},
}

// chordFromKey converts a terminal key press into a chord. Upper case
// letters carry Shift. Terminals cannot report every combination, e.g.
// Ctrl+Shift+letter arrives as Ctrl+letter.
func chordFromKey(msg tea.KeyMsg) (types.KeyChord, bool) {
	s := msg.String()
	var mods types.Modifiers
	for stripped := true; stripped; {
		stripped = false
		for _, m := range teaModifiers {
			if len(s) > len(m.prefix) && strings.HasPrefix(s, m.prefix) {
				mods |= m.mod
				s = s[len(m.prefix):]
				stripped = true
			}
		}
	}
	if k, ok := teaKeys[s]; ok {
		return types.Chord(mods, k), true
	}
	if len(s) >= 2 && s[0] == 'f' {
		if k, ok := types.KeyByName("F" + s[1:]); ok {
			return types.Chord(mods, k), true
		}
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return types.KeyChord{}, false
	}
	r := runes[0]
	if unicode.IsUpper(r) {
		mods |= types.ModShift
	}
	if k, ok := types.KeyByName(string(unicode.ToUpper(r))); ok {
		return types.Chord(mods, k), true
	}
	return types.KeyChord{}, false
}

// keyFrame offers one pressed chord to the binding table. The terminal
// has no ⌘ key, so Command bindings match Ctrl.
type keyFrame struct {
	chord    types.KeyChord
	consumed bool
}

func (f *keyFrame) ConsumeChord(c types.KeyChord) bool {
	if f.consumed || c.Modifiers.Has(types.ModMacCmd) {
		return false
	}
	if c.Modifiers.Has(types.ModCommand) {
		c.Modifiers = c.Modifiers&^types.ModCommand | types.ModCtrl
	}
	if c != f.chord {
		return false
	}
	f.consumed = true
	return true
}

// Deliverable reports whether a terminal can send c. Ctrl+Shift on a
// letter or digit arrives without the Shift, and there is no ⌘ key.
func Deliverable(c types.KeyChord) bool {
	if c.Modifiers.Has(types.ModMacCmd) {
		return false
	}
	ctrl := c.Modifiers.Has(types.ModCtrl) || c.Modifiers.Has(types.ModCommand)
	if ctrl && c.Modifiers.Has(types.ModShift) {
		name := c.Key.Name()
		return len(name) != 1 || !(unicode.IsUpper(rune(name[0])) || unicode.IsDigit(rune(name[0])))
	}
	return true
}

// Alternative describes how to reach a in the terminal when its chord c
// cannot be typed there. It is empty for deliverable chords.
func Alternative(c types.KeyChord, a types.Action, menu *app.MenuBar) string {
	if Deliverable(c) {
		return ""
	}
	if path := menu.Path(a); path != nil {
		return "F10 › " + strings.Join(path, " › ")
	}
	if a.Kind == types.OpenSettingWindow {
		return "click " + app.RailSetting.Icon() + " on the tool rail"
	}
	return "not available in a terminal"
}
