package keymap

import "codeshell/pkg/types"

// DefaultsVersion changes whenever the default binding list does.
const DefaultsVersion = 1

var defaultBindings = []struct {
	keys string
	kind types.ActionKind
}{
	{"Alt+Enter", types.ToggleFullScreen},
	{"F11", types.ToggleFullScreen},
	{"Alt+Shift+Enter", types.ToggleDecorations},
	{"Ctrl+Minus", types.ZoomOut},
	{"Ctrl+Plus", types.ZoomIn},
	{"Ctrl+0", types.ZoomReset},
	{"F12", types.OpenDebugWindow},
	{"Alt+F12", types.OpenPuffinViewer},
	{"Ctrl+F12", types.OpenAboutWindow},
	{"Ctrl+Shift+Q", types.ExitApp},
	{"Ctrl+Shift+O", types.OpenFolder},
	{"Ctrl+Shift+S", types.OpenSettingWindow},
	{"Alt+1", types.ToggleExplorer},
	{"Alt+3", types.ToggleTerminal},
	{"Alt+4", types.ToggleStatusBar},
	{"Alt+5", types.ToggleToolBar},
}

// LoadDefaults inserts the built-in bindings and stops at the first error.
func (t *Table) LoadDefaults() error {
	for _, d := range defaultBindings {
		chord, err := ParseChord(d.keys)
		if err != nil {
			return err
		}
		if err := t.Insert(chord, types.Do(d.kind)); err != nil {
			return err
		}
	}
	return nil
}

// MustLoadDefaults panics if the built-in bindings do not load.
func (t *Table) MustLoadDefaults() *Table {
	if err := t.LoadDefaults(); err != nil {
		panic(err)
	}
	return t
}
