package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"codeshell/internal/filetree"
	"codeshell/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// FileTree displays the rows of a filetree.Tree with a cursor.
type FileTree struct {
	tree   *filetree.Tree
	rows   []filetree.Row
	Cursor int
	Offset int // For scrolling
	Width  int
	Height int
}

// NewFileTree creates an empty explorer.
func NewFileTree() *FileTree {
	return &FileTree{Width: 30, Height: 20}
}

// SetTree replaces the displayed tree and resets the cursor.
func (f *FileTree) SetTree(t *filetree.Tree) {
	f.tree = t
	f.Cursor = 0
	f.Offset = 0
	f.Reload()
}

// Tree returns the displayed tree, or nil.
func (f *FileTree) Tree() *filetree.Tree { return f.tree }

// Reload recomputes the visible rows after the tree changed.
func (f *FileTree) Reload() {
	if f.tree == nil {
		f.rows = nil
		return
	}
	f.rows = f.tree.Rows()
	if f.Cursor >= len(f.rows) {
		f.Cursor = max(0, len(f.rows)-1)
	}
	f.EnsureCursorVisible()
}

// Rows returns the visible rows.
func (f *FileTree) Rows() []filetree.Row { return f.rows }

// Current returns the row under the cursor.
func (f *FileTree) Current() (filetree.Row, bool) {
	if f.Cursor < 0 || f.Cursor >= len(f.rows) {
		return filetree.Row{}, false
	}
	return f.rows[f.Cursor], true
}

// MoveUp moves the cursor up one row
func (f *FileTree) MoveUp() {
	if f.Cursor > 0 {
		f.Cursor--
	}
	f.EnsureCursorVisible()
}

// MoveDown moves the cursor down one row
func (f *FileTree) MoveDown() {
	if f.Cursor < len(f.rows)-1 {
		f.Cursor++
	}
	f.EnsureCursorVisible()
}

// Expand opens the directory under the cursor.
func (f *FileTree) Expand() {
	row, ok := f.Current()
	if !ok || row.Kind != filetree.Dir || row.Expanded {
		return
	}
	f.tree.Expand(row.ID, true)
	f.Reload()
}

// Collapse closes the directory under the cursor, or moves to the parent
// row when there is nothing to close.
func (f *FileTree) Collapse() {
	row, ok := f.Current()
	if !ok {
		return
	}
	if row.Kind == filetree.Dir && row.Expanded && row.ID != f.tree.Root() {
		f.tree.Expand(row.ID, false)
		f.Reload()
		return
	}
	f.MoveToParent()
}

// MoveToParent moves the cursor to the row holding the parent directory.
func (f *FileTree) MoveToParent() {
	row, ok := f.Current()
	if !ok {
		return
	}
	parent := f.tree.Parent(row.Chain[0])
	for i, r := range f.rows {
		if r.ID == parent {
			f.Cursor = i
			break
		}
	}
	f.EnsureCursorVisible()
}

// Select moves the cursor to the row acting on id.
func (f *FileTree) Select(id filetree.NodeID) {
	for i, r := range f.rows {
		if r.ID == id {
			f.Cursor = i
			f.EnsureCursorVisible()
			return
		}
	}
}

// EnsureCursorVisible makes sure the cursor is visible by adjusting the scroll offset
func (f *FileTree) EnsureCursorVisible() {
	if f.Height <= 0 {
		return
	}
	if f.Cursor < f.Offset {
		f.Offset = f.Cursor
	}
	if f.Cursor >= f.Offset+f.Height {
		f.Offset = f.Cursor - f.Height + 1
	}
	maxOffset := max(0, len(f.rows)-f.Height)
	f.Offset = min(max(f.Offset, 0), maxOffset)
}

func fileIcon(name string) string {
	switch filepath.Ext(strings.ToLower(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg":
		return "🖼 "
	case ".zip", ".tar", ".gz", ".rar", ".7z":
		return "🗜 "
	case ".md", ".txt":
		return "📝 "
	case ".go", ".rs", ".js", ".ts", ".py", ".c", ".h", ".cpp", ".java":
		return "⌨ "
	default:
		return "📄 "
	}
}

// View renders the visible slice of the tree.
func (f *FileTree) View(st styles.Styles, focused bool) string {
	if f.tree == nil {
		return st.Muted.Width(f.Width).Render("No folder opened")
	}
	if len(f.rows) == 0 {
		return st.Muted.Width(f.Width).Render("Empty folder")
	}

	end := min(len(f.rows), f.Offset+f.Height)
	lines := make([]string, 0, end-f.Offset)
	for i := f.Offset; i < end; i++ {
		row := f.rows[i]

		var icon string
		if row.Kind == filetree.Dir {
			if row.Expanded {
				icon = "▾ "
			} else {
				icon = "▸ "
			}
		} else {
			icon = fileIcon(row.Label)
		}
		line := strings.Repeat("  ", row.Depth) + icon + row.Label
		if w := lipgloss.Width(line); f.Width > 3 && w > f.Width {
			line = truncate(line, f.Width-1) + "…"
		}

		switch {
		case i == f.Cursor && focused:
			line = st.Cursor.Render(line)
		case row.Kind == filetree.Dir:
			line = st.Directory.Render(line)
		default:
			line = st.File.Render(line)
		}
		lines = append(lines, line)
	}
	if rest := len(f.rows) - end; rest > 0 {
		lines = append(lines, st.Muted.Render(fmt.Sprintf("↓ %d more", rest)))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}
