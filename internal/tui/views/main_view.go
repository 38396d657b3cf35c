// Package views composes the rendered pieces of the host into a screen.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout holds already rendered pieces. Empty pieces are left out.
type Layout struct {
	MenuBar  string
	Dropdown string
	Rail     string
	Panel    string
	Tabs     string
	Vertical bool
	Editor   string
	Terminal string
	Overlay  string
	Toasts   string
	Prompt   string
	Status   string
	Help     string
}

// RenderMainView stacks the menu bar, the body, the bottom panels and the
// status line.
func RenderMainView(l Layout) string {
	var main string
	switch {
	case l.Tabs == "":
		main = l.Editor
	case l.Vertical:
		main = lipgloss.JoinHorizontal(lipgloss.Top, l.Tabs, " ", l.Editor)
	default:
		main = lipgloss.JoinVertical(lipgloss.Left, l.Tabs, l.Editor)
	}

	body := join(lipgloss.JoinHorizontal, lipgloss.Top, l.Rail, l.Panel, main)
	if l.Dropdown != "" {
		body = l.Dropdown
	}
	return join(lipgloss.JoinVertical, lipgloss.Left,
		l.MenuBar, body, l.Overlay, l.Terminal, l.Toasts, l.Prompt, l.Status, l.Help)
}

func join(f func(lipgloss.Position, ...string) string, pos lipgloss.Position, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return f(pos, kept...)
}
