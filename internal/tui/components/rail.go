package components

import (
	"strings"

	"codeshell/internal/app"
	"codeshell/internal/tui/styles"
)

// RailView draws the tool rail with its bottom items pushed down to height.
func RailView(rail *app.ToolRail, height int, st styles.Styles) string {
	render := func(item app.RailItem) string {
		switch {
		case item == rail.Hovered():
			return st.RailHover.Render(item.Icon())
		case item == rail.Current():
			return st.RailActive.Render(item.Icon())
		default:
			return st.RailItem.Render(item.Icon())
		}
	}

	var lines []string
	for _, item := range rail.Top() {
		lines = append(lines, render(item))
	}
	bottom := rail.Bottom()
	for len(lines)+len(bottom) < height {
		lines = append(lines, "")
	}
	for _, item := range bottom {
		lines = append(lines, render(item))
	}
	return st.Rail.Render(strings.Join(lines, "\n"))
}

// RailItemAt maps a row of the rail to its item.
func RailItemAt(rail *app.ToolRail, row, height int) (app.RailItem, bool) {
	top := rail.Top()
	if row >= 0 && row < len(top) {
		return top[row], true
	}
	bottom := rail.Bottom()
	first := max(height, len(top)+len(bottom)) - len(bottom)
	if i := row - first; i >= 0 && i < len(bottom) {
		return bottom[i], true
	}
	return app.RailNone, false
}
