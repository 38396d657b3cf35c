package components

import (
	"strings"

	"codeshell/internal/app"
	"codeshell/internal/tui/styles"
	"codeshell/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// Menu tracks which menu of the bar is open and the highlighted entry.
type Menu struct {
	bar    *app.MenuBar
	open   int
	cursor int
}

func NewMenu(bar *app.MenuBar) *Menu {
	return &Menu{bar: bar, open: -1}
}

func (m *Menu) IsOpen() bool { return m.open >= 0 }

// Open shows menu i with the first selectable entry highlighted.
func (m *Menu) Open(i int) {
	m.open = i
	m.cursor = -1
	m.Down()
}

func (m *Menu) Close() { m.open = -1 }

// Left and Right switch to the neighbouring menu.
func (m *Menu) Left()  { m.Open((m.open + len(m.bar.Menus()) - 1) % len(m.bar.Menus())) }
func (m *Menu) Right() { m.Open((m.open + 1) % len(m.bar.Menus())) }

func selectable(e app.MenuEntry) bool { return !e.Separator && !e.Header }

// Down moves to the next selectable entry, if any.
func (m *Menu) Down() {
	entries := m.bar.Entries(m.open)
	for i := m.cursor + 1; i < len(entries); i++ {
		if selectable(entries[i]) {
			m.cursor = i
			return
		}
	}
}

// Up moves to the previous selectable entry, if any.
func (m *Menu) Up() {
	entries := m.bar.Entries(m.open)
	for i := m.cursor - 1; i >= 0; i-- {
		if selectable(entries[i]) {
			m.cursor = i
			return
		}
	}
}

// Selected returns the action of the highlighted entry.
func (m *Menu) Selected() (types.Action, bool) {
	entries := m.bar.Entries(m.open)
	if m.cursor < 0 || m.cursor >= len(entries) || !selectable(entries[m.cursor]) {
		return types.Action{}, false
	}
	return entries[m.cursor].Action, true
}

// BarView renders the menu titles.
func (m *Menu) BarView(st styles.Styles) string {
	titles := make([]string, 0, len(m.bar.Menus()))
	for i, menu := range m.bar.Menus() {
		if i == m.open {
			titles = append(titles, st.MenuActive.Render(menu.Title))
		} else {
			titles = append(titles, st.MenuTitle.Render(menu.Title))
		}
	}
	return st.MenuBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, titles...))
}

// DropdownView renders the entries of the open menu, or "" when closed.
func (m *Menu) DropdownView(st styles.Styles) string {
	if !m.IsOpen() {
		return ""
	}
	entries := m.bar.Entries(m.open)
	if len(entries) == 0 {
		return st.Dropdown.Render(st.Muted.Render("(empty)"))
	}
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Label)+2*e.Depth)
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		indent := strings.Repeat("  ", e.Depth)
		switch {
		case e.Separator:
			lines[i] = st.Muted.Render(strings.Repeat("─", width))
		case e.Header:
			lines[i] = st.MenuHeader.Render(indent + e.Label)
		case i == m.cursor:
			lines[i] = st.MenuSelected.Render(indent + e.Label)
		default:
			lines[i] = st.MenuItem.Render(indent + e.Label)
		}
	}
	return st.Dropdown.Render(strings.Join(lines, "\n"))
}
