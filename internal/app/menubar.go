package app

import (
	"fmt"

	"codeshell/internal/bus"
	"codeshell/internal/keymap"
	"codeshell/pkg/types"
)

// MenuItem is a command, a separator or a submenu.
type MenuItem struct {
	Action    types.Action
	Separator bool
	Title     string
	Children  []MenuItem
}

// Menu is one top level entry of the menu bar.
type Menu struct {
	Title string
	Items []MenuItem
}

// MenuEntry is a flattened, drawable menu line.
type MenuEntry struct {
	Depth     int
	Label     string
	Action    types.Action
	Separator bool
	Header    bool
}

func cmd(kind types.ActionKind) MenuItem { return MenuItem{Action: types.Do(kind)} }

var separator = MenuItem{Separator: true}

// MenuBar publishes the action of the item the user picks.
type MenuBar struct {
	menus  []Menu
	keys   func() *keymap.Table
	sender bus.Sender
}

// NewMenuBar builds the menu tree. keys is consulted on every render so
// reloaded bindings show up immediately.
func NewMenuBar(keys func() *keymap.Table, sender bus.Sender) *MenuBar {
	return &MenuBar{
		keys:   keys,
		sender: sender,
		menus: []Menu{
			{Title: "File", Items: []MenuItem{cmd(types.OpenFolder), separator, cmd(types.ExitApp)}},
			{Title: "Edit"},
			{Title: "View", Items: []MenuItem{{
				Title: "Appearance",
				Children: []MenuItem{
					cmd(types.ToggleFullScreen),
					cmd(types.ToggleStatusBar),
					cmd(types.ToggleToolBar),
					cmd(types.ToggleTerminal),
					separator,
					cmd(types.ZoomIn),
					cmd(types.ZoomOut),
					cmd(types.ZoomReset),
				},
			}}},
			{Title: "About", Items: []MenuItem{
				cmd(types.OpenDebugWindow),
				cmd(types.OpenPuffinViewer),
				separator,
				cmd(types.OpenAboutWindow),
			}},
		},
	}
}

// Menus returns the menu tree.
func (m *MenuBar) Menus() []Menu { return m.menus }

// ItemLabel is the action name padded against its first shortcut.
func (m *MenuBar) ItemLabel(a types.Action) string {
	keys := m.keys().KeysFor(a)
	if len(keys) == 0 {
		return a.Name()
	}
	return fmt.Sprintf("%-15s%15s", a.Name(), keymap.FormatChord(keys[0]))
}

// Entries flattens menu i for drawing. Submenus become a header line
// followed by their indented items.
func (m *MenuBar) Entries(i int) []MenuEntry {
	if i < 0 || i >= len(m.menus) {
		return nil
	}
	var out []MenuEntry
	var walk func(items []MenuItem, depth int)
	walk = func(items []MenuItem, depth int) {
		for _, it := range items {
			switch {
			case it.Separator:
				out = append(out, MenuEntry{Depth: depth, Separator: true})
			case len(it.Children) > 0:
				out = append(out, MenuEntry{Depth: depth, Label: it.Title, Header: true})
				walk(it.Children, depth+1)
			default:
				out = append(out, MenuEntry{Depth: depth, Label: m.ItemLabel(it.Action), Action: it.Action})
			}
		}
	}
	walk(m.menus[i].Items, 0)
	return out
}

// Activate publishes the action of a picked item.
func (m *MenuBar) Activate(a types.Action) {
	m.sender.Send(a)
}

func (m *MenuBar) Handle(a types.Action) {
	switch a.Kind {
	case types.NoOp, types.ExitApp, types.ToggleFullScreen, types.ToggleDecorations,
		types.ToggleStatusBar, types.ToggleToolBar, types.ToggleExplorer, types.ToggleTerminal,
		types.ToggleVerticalTabBar, types.ZoomIn, types.ZoomOut, types.ZoomReset, types.ZoomSet,
		types.OpenDebugWindow, types.OpenPuffinViewer, types.OpenAboutWindow,
		types.OpenSettingWindow, types.OpenFolder, types.SetOpenDir:
	}
}

// Path returns the menu and submenu titles leading to a, followed by its
// name, or nil when no item publishes a.
func (m *MenuBar) Path(a types.Action) []string {
	var find func(items []MenuItem, prefix []string) []string
	find = func(items []MenuItem, prefix []string) []string {
		for _, it := range items {
			switch {
			case it.Separator:
			case len(it.Children) > 0:
				if p := find(it.Children, append(prefix, it.Title)); p != nil {
					return p
				}
			case it.Action == a:
				return append(append([]string(nil), prefix...), a.Name())
			}
		}
		return nil
	}
	for _, menu := range m.menus {
		if p := find(menu.Items, []string{menu.Title}); p != nil {
			return p
		}
	}
	return nil
}
