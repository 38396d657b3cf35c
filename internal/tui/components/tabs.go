package components

import (
	"strings"

	"codeshell/internal/document"
	"codeshell/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Tabs draws one tab per open document. Cursor is the tab the tab bar
// keys act on.
type Tabs struct {
	Cursor   int
	Vertical bool
}

// Clamp keeps the cursor on an existing tab.
func (t *Tabs) Clamp(n int) {
	t.Cursor = min(max(t.Cursor, 0), max(n-1, 0))
}

func (t *Tabs) View(docs []*document.Document, current int, st styles.Styles, focused bool) string {
	if len(docs) == 0 {
		return st.Muted.Render("No open documents")
	}
	labels := make([]string, len(docs))
	for i, d := range docs {
		style := st.Tab
		switch {
		case focused && i == t.Cursor:
			style = st.TabCursor
		case i == current:
			style = st.TabActive
		}
		labels[i] = style.Render(d.Title())
	}
	if t.Vertical {
		return strings.Join(labels, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}
