package components

import (
	"strings"
	"testing"

	"codeshell/internal/app"
	"codeshell/internal/bus"
	"codeshell/internal/filetree"
	"codeshell/internal/keymap"
	"codeshell/internal/tui/styles"
	"codeshell/pkg/testutils"
	"codeshell/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T) *FileTree {
	t.Helper()
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"a/one.txt": "1",
		"b/two.txt": "2",
		"c.txt":     "3",
	})
	tree, err := filetree.New(dir)
	require.NoError(t, err)
	f := NewFileTree()
	f.SetTree(tree)
	return f
}

func TestFileTreeCursor(t *testing.T) {
	f := newTree(t)
	require.Len(t, f.Rows(), 4)

	f.MoveUp()
	assert.Equal(t, 0, f.Cursor)
	f.MoveDown()
	row, ok := f.Current()
	require.True(t, ok)
	assert.Equal(t, "a", row.Label)

	f.Expand()
	assert.Len(t, f.Rows(), 5)
	f.MoveDown()
	row, _ = f.Current()
	assert.Equal(t, "one.txt", row.Label)

	f.Collapse()
	row, _ = f.Current()
	assert.Equal(t, "a", row.Label, "collapse on a file moves to its directory")
	f.Collapse()
	assert.Len(t, f.Rows(), 4)

	for i := 0; i < 10; i++ {
		f.MoveDown()
	}
	assert.Equal(t, 3, f.Cursor)
}

func TestFileTreeScroll(t *testing.T) {
	f := newTree(t)
	f.Height = 2
	f.Cursor = 3
	f.EnsureCursorVisible()
	assert.Equal(t, 2, f.Offset)

	out := testutils.StripANSI(f.View(styles.ForTheme("dark"), true))
	assert.Contains(t, out, "c.txt")
	assert.NotContains(t, out, "▾ ")

	f.Cursor = 0
	f.EnsureCursorVisible()
	assert.Equal(t, 0, f.Offset)
	assert.Contains(t, testutils.StripANSI(f.View(styles.ForTheme("dark"), true)), "↓ 2 more")
}

func TestFileTreeEmpty(t *testing.T) {
	f := NewFileTree()
	assert.Contains(t, f.View(styles.ForTheme("dark"), false), "No folder opened")
	_, ok := f.Current()
	assert.False(t, ok)
}

func newMenu() (*Menu, *app.MenuBar) {
	table := keymap.NewTable().MustLoadDefaults()
	bar := app.NewMenuBar(func() *keymap.Table { return table }, bus.New(4))
	return NewMenu(bar), bar
}

func TestMenuSkipsSeparators(t *testing.T) {
	m, _ := newMenu()
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.DropdownView(styles.ForTheme("dark")))

	m.Open(0)
	a, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, types.Do(types.OpenFolder), a)

	m.Down()
	a, _ = m.Selected()
	assert.Equal(t, types.Do(types.ExitApp), a)
	m.Down()
	a, _ = m.Selected()
	assert.Equal(t, types.Do(types.ExitApp), a)
	m.Up()
	a, _ = m.Selected()
	assert.Equal(t, types.Do(types.OpenFolder), a)

	m.Right()
	_, ok = m.Selected()
	assert.False(t, ok, "Edit is empty")
	m.Left()
	m.Left()
	a, _ = m.Selected()
	assert.Equal(t, types.Do(types.OpenDebugWindow), a)

	out := testutils.StripANSI(m.DropdownView(styles.ForTheme("dark")))
	assert.Contains(t, out, "OpenAboutWindow")
	assert.Contains(t, out, "Ctrl+F12")
}

func TestStatusBarLayout(t *testing.T) {
	s := &StatusBar{Width: 40}
	out := testutils.StripANSI(s.View([]app.StatusItem{
		{Text: "/tmp/a.txt"},
		{Text: "UTF-8", Right: true},
		{Text: "LF", Right: true},
	}, styles.ForTheme("dark")))
	assert.True(t, strings.HasPrefix(out, "/tmp/a.txt"))
	assert.True(t, strings.HasSuffix(out, "UTF-8  LF"))
	assert.Equal(t, 40, len(out))
}

func TestRailItemAt(t *testing.T) {
	rail := app.NewToolRail(bus.New(4))
	item, ok := RailItemAt(rail, 0, 10)
	require.True(t, ok)
	assert.Equal(t, app.RailExplorer, item)
	item, ok = RailItemAt(rail, 9, 10)
	require.True(t, ok)
	assert.Equal(t, app.RailSetting, item)
	_, ok = RailItemAt(rail, 5, 10)
	assert.False(t, ok)

	out := RailView(rail, 10, styles.ForTheme("dark"))
	assert.Equal(t, 10, strings.Count(out, "\n")+1)
}

func TestTabs(t *testing.T) {
	tabs := &Tabs{Cursor: 5}
	tabs.Clamp(2)
	assert.Equal(t, 1, tabs.Cursor)
	tabs.Clamp(0)
	assert.Equal(t, 0, tabs.Cursor)
	assert.Contains(t, tabs.View(nil, -1, styles.ForTheme("dark"), false), "No open documents")
}
