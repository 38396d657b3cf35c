package components

import (
	"strings"

	"codeshell/internal/app"
	"codeshell/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar lays status items out on one line: left items first, right
// items flush against the right edge.
type StatusBar struct {
	Width int
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) View(items []app.StatusItem, st styles.Styles) string {
	var left, right []string
	for _, it := range items {
		if it.Right {
			right = append(right, it.Text)
		} else {
			left = append(left, it.Text)
		}
	}
	l := strings.Join(left, " | ")
	r := strings.Join(right, "  ")
	gap := s.Width - lipgloss.Width(l) - lipgloss.Width(r)
	if gap < 1 {
		gap = 1
	}
	return st.Status.Render(l + strings.Repeat(" ", gap) + r)
}
