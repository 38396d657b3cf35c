// Package styles turns a color theme into lipgloss styles.
package styles

import (
	"codeshell/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the full set of styles the host draws with.
type Styles struct {
	App          lipgloss.Style
	MenuBar      lipgloss.Style
	MenuTitle    lipgloss.Style
	MenuActive   lipgloss.Style
	Dropdown     lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuHeader   lipgloss.Style
	Rail         lipgloss.Style
	RailItem     lipgloss.Style
	RailActive   lipgloss.Style
	RailHover    lipgloss.Style
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	Title        lipgloss.Style
	Directory    lipgloss.Style
	File         lipgloss.Style
	Cursor       lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	TabCursor    lipgloss.Style
	Status       lipgloss.Style
	Info         lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Overlay      lipgloss.Style
	Muted        lipgloss.Style
	Help         lipgloss.Style
}

// FromTheme builds styles from a theme color map as returned by
// config.GetTheme.
func FromTheme(theme map[string]string) Styles {
	c := func(key string) lipgloss.Color { return lipgloss.Color(theme[key]) }
	border := lipgloss.NormalBorder()

	return Styles{
		App:          lipgloss.NewStyle(),
		MenuBar:      lipgloss.NewStyle().Foreground(c("text")),
		MenuTitle:    lipgloss.NewStyle().Padding(0, 1),
		MenuActive:   lipgloss.NewStyle().Padding(0, 1).Foreground(c("text")).Background(c("selected")).Bold(true),
		Dropdown:     lipgloss.NewStyle().Border(border).BorderForeground(c("border")),
		MenuItem:     lipgloss.NewStyle().Foreground(c("text")),
		MenuSelected: lipgloss.NewStyle().Foreground(c("text")).Background(c("selected")),
		MenuHeader:   lipgloss.NewStyle().Foreground(c("accent")).Bold(true),
		Rail:         lipgloss.NewStyle().BorderStyle(border).BorderRight(true).BorderForeground(c("border")),
		RailItem:     lipgloss.NewStyle().Foreground(c("muted")).Padding(0, 1),
		RailActive:   lipgloss.NewStyle().Foreground(c("primary")).Bold(true).Padding(0, 1),
		RailHover:    lipgloss.NewStyle().Foreground(c("text")).Background(c("selected")).Padding(0, 1),
		Panel:        lipgloss.NewStyle().Border(border).BorderForeground(c("border")),
		PanelFocused: lipgloss.NewStyle().Border(border).BorderForeground(c("primary")),
		Title:        lipgloss.NewStyle().Foreground(c("primary")).Bold(true),
		Directory:    lipgloss.NewStyle().Foreground(c("accent")).Bold(true),
		File:         lipgloss.NewStyle().Foreground(c("text")),
		Cursor:       lipgloss.NewStyle().Foreground(c("text")).Background(c("selected")).Bold(true),
		Tab:          lipgloss.NewStyle().Foreground(c("muted")).Padding(0, 1),
		TabActive:    lipgloss.NewStyle().Foreground(c("primary")).Bold(true).Underline(true).Padding(0, 1),
		TabCursor:    lipgloss.NewStyle().Foreground(c("text")).Background(c("selected")).Padding(0, 1),
		Status:       lipgloss.NewStyle().Foreground(c("muted")),
		Info:         lipgloss.NewStyle().Foreground(c("accent")),
		Warning:      lipgloss.NewStyle().Foreground(c("warning")),
		Error:        lipgloss.NewStyle().Foreground(c("error")).Bold(true),
		Overlay:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c("primary")).Padding(0, 1),
		Muted:        lipgloss.NewStyle().Foreground(c("muted")).Italic(true),
		Help:         lipgloss.NewStyle().Foreground(c("muted")),
	}
}

// ForTheme returns the styles of a named theme.
func ForTheme(name string) Styles {
	return FromTheme(config.GetTheme(name))
}
