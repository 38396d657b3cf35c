package types

import "github.com/charmbracelet/bubbles/key"

// Focus is the zone of the terminal host that receives keys the binding
// table did not consume.
type Focus int

const (
	FocusEditor Focus = iota
	FocusExplorer
	FocusTabs
	FocusMenu
)

func (f Focus) String() string {
	switch f {
	case FocusExplorer:
		return "explorer"
	case FocusTabs:
		return "tabs"
	case FocusMenu:
		return "menu"
	default:
		return "editor"
	}
}

// KeyMap holds the host-local keys. Application commands live in the
// chord binding table instead; these only move focus and drive widgets.
type KeyMap struct {
	// General
	Help       key.Binding
	CycleFocus key.Binding
	Menu       key.Binding
	Cancel     key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	// Explorer context actions
	CopyPath         key.Binding
	CopyRelativePath key.Binding
	Reveal           key.Binding
	Refresh          key.Binding

	// Tab bar
	CloseTab     key.Binding
	CloseOthers  key.Binding
	CloseToRight key.Binding
	CloseSaved   key.Binding
	CloseAll     key.Binding

	// Editor
	Save          key.Binding
	NewlineIndent key.Binding
}

// DefaultKeyMap returns the host-local keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		CycleFocus: key.NewBinding(key.WithKeys("f6"), key.WithHelp("F6", "next pane")),
		Menu:       key.NewBinding(key.WithKeys("f10"), key.WithHelp("F10", "menu")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to editor")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse / previous")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand / next")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),

		CopyPath:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy path")),
		CopyRelativePath: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy relative path")),
		Reveal:           key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "reveal in file manager")),
		Refresh:          key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),

		CloseTab:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		CloseOthers:  key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "close others")),
		CloseToRight: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "close to the right")),
		CloseSaved:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "close saved")),
		CloseAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "close all")),

		Save:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NewlineIndent: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "newline and indent")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.CycleFocus, k.Menu, k.Save}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Help, k.CycleFocus, k.Menu, k.Cancel},
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
		{k.CopyPath, k.CopyRelativePath, k.Reveal, k.Refresh},
		{k.CloseTab, k.CloseOthers, k.CloseToRight, k.CloseSaved, k.CloseAll},
		{k.Save, k.NewlineIndent},
	}
}
