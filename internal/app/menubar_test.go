package app

import (
	"fmt"
	"testing"

	"codeshell/internal/bus"
	"codeshell/internal/keymap"
	"codeshell/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenu() (*MenuBar, *bus.Bus) {
	b := bus.New(8)
	table := keymap.NewTable().MustLoadDefaults()
	return NewMenuBar(func() *keymap.Table { return table }, b), b
}

func TestMenuTitles(t *testing.T) {
	m, _ := newTestMenu()
	var titles []string
	for _, menu := range m.Menus() {
		titles = append(titles, menu.Title)
	}
	assert.Equal(t, []string{"File", "Edit", "View", "About"}, titles)
	assert.Empty(t, m.Entries(1))
	assert.Nil(t, m.Entries(7))
}

func TestItemLabel(t *testing.T) {
	m, _ := newTestMenu()
	assert.Equal(t, fmt.Sprintf("%-15s%15s", "ToggleStatusBar", "Alt+4"), m.ItemLabel(types.Do(types.ToggleStatusBar)))
	// Alt+Enter sorts before F11.
	assert.Equal(t, fmt.Sprintf("%-15s%15s", "ToggleFullScreen", "Alt+Enter"), m.ItemLabel(types.Do(types.ToggleFullScreen)))
	assert.Equal(t, "ToggleVerticalTabBar", m.ItemLabel(types.Do(types.ToggleVerticalTabBar)))
}

func TestMenuPath(t *testing.T) {
	m, _ := newTestMenu()
	assert.Equal(t, []string{"File", "OpenFolder"}, m.Path(types.Do(types.OpenFolder)))
	assert.Equal(t, []string{"View", "Appearance", "ZoomReset"}, m.Path(types.Do(types.ZoomReset)))
	assert.Equal(t, []string{"About", "OpenAboutWindow"}, m.Path(types.Do(types.OpenAboutWindow)))
	assert.Nil(t, m.Path(types.Do(types.OpenSettingWindow)))
	assert.Nil(t, m.Path(types.SetZoom(1.5)))
}

func TestMenuEntries(t *testing.T) {
	m, _ := newTestMenu()

	file := m.Entries(0)
	require.Len(t, file, 3)
	assert.Equal(t, types.Do(types.OpenFolder), file[0].Action)
	assert.True(t, file[1].Separator)
	assert.Equal(t, types.Do(types.ExitApp), file[2].Action)

	view := m.Entries(2)
	require.Len(t, view, 9)
	assert.True(t, view[0].Header)
	assert.Equal(t, "Appearance", view[0].Label)
	var actions []types.ActionKind
	for _, e := range view[1:] {
		assert.Equal(t, 1, e.Depth)
		if !e.Separator {
			actions = append(actions, e.Action.Kind)
		}
	}
	assert.Equal(t, []types.ActionKind{
		types.ToggleFullScreen, types.ToggleStatusBar, types.ToggleToolBar, types.ToggleTerminal,
		types.ZoomIn, types.ZoomOut, types.ZoomReset,
	}, actions)
	assert.True(t, view[5].Separator)

	about := m.Entries(3)
	require.Len(t, about, 4)
	assert.Equal(t, types.Do(types.OpenAboutWindow), about[3].Action)
}

func TestMenuActivate(t *testing.T) {
	m, b := newTestMenu()
	m.Activate(types.Do(types.ZoomIn))
	assert.Equal(t, []types.Action{types.Do(types.ZoomIn)}, b.DrainAll())
}

func TestToolRail(t *testing.T) {
	b := bus.New(8)
	r := NewToolRail(b)
	assert.Equal(t, RailNone, r.Current())
	assert.Equal(t, []RailItem{RailExplorer, RailSearch, RailExtension}, r.Top())
	assert.Equal(t, []RailItem{RailSetting}, r.Bottom())

	r.Click(RailExplorer)
	assert.True(t, r.ExplorerVisible())
	r.Click(RailSearch)
	assert.Equal(t, RailSearch, r.Current())
	assert.False(t, r.ExplorerVisible())
	r.Click(RailSearch)
	assert.Equal(t, RailNone, r.Current())

	r.Handle(types.Do(types.ToggleExplorer))
	assert.True(t, r.ExplorerVisible())
	r.Handle(types.Do(types.ToggleExplorer))
	assert.False(t, r.ExplorerVisible())
	r.Handle(types.Do(types.ZoomIn))
	assert.Equal(t, RailNone, r.Current())

	r.Click(RailSetting)
	assert.Equal(t, RailNone, r.Current())
	assert.Equal(t, []types.Action{types.Do(types.OpenSettingWindow)}, b.DrainAll())

	assert.Equal(t, "Explorer", RailExplorer.String())
	assert.Equal(t, "", RailNone.String())
}
