package app

import (
	"codeshell/internal/bus"
	"codeshell/pkg/types"
)

// RailItem is an entry of the vertical tool rail.
type RailItem int

const (
	RailNone RailItem = iota - 1
	RailExplorer
	RailSearch
	RailExtension
	RailSetting
)

func (r RailItem) String() string {
	switch r {
	case RailExplorer:
		return "Explorer"
	case RailSearch:
		return "Search"
	case RailExtension:
		return "Extension"
	case RailSetting:
		return "Setting"
	default:
		return ""
	}
}

// Icon is the glyph drawn for the item.
func (r RailItem) Icon() string {
	switch r {
	case RailExplorer:
		return "☰"
	case RailSearch:
		return "⌕"
	case RailExtension:
		return "⧉"
	case RailSetting:
		return "⚙"
	default:
		return " "
	}
}

// ToolRail selects which side panel is shown. At most one top item is
// current; the bottom item only publishes an action.
type ToolRail struct {
	current RailItem
	hover   RailItem
	sender  bus.Sender
}

// NewToolRail returns a rail with nothing selected.
func NewToolRail(sender bus.Sender) *ToolRail {
	return &ToolRail{current: RailNone, hover: RailNone, sender: sender}
}

// Top returns the panel items.
func (r *ToolRail) Top() []RailItem {
	return []RailItem{RailExplorer, RailSearch, RailExtension}
}

// Bottom returns the items pinned to the bottom.
func (r *ToolRail) Bottom() []RailItem {
	return []RailItem{RailSetting}
}

// Click toggles a top item or runs a bottom one.
func (r *ToolRail) Click(item RailItem) {
	if item == RailSetting {
		r.sender.Send(types.Do(types.OpenSettingWindow))
		return
	}
	r.toggle(item)
}

func (r *ToolRail) toggle(item RailItem) {
	if r.current == item {
		r.current = RailNone
		return
	}
	r.current = item
}

// Current returns the selected top item, or RailNone.
func (r *ToolRail) Current() RailItem { return r.current }

// ExplorerVisible reports whether the explorer panel is shown.
func (r *ToolRail) ExplorerVisible() bool { return r.current == RailExplorer }

// Hover marks the item under the pointer.
func (r *ToolRail) Hover(item RailItem) { r.hover = item }

// Hovered returns the item under the pointer, or RailNone.
func (r *ToolRail) Hovered() RailItem { return r.hover }

// Reset clears the transient state drawn from the previous theme.
func (r *ToolRail) Reset() { r.hover = RailNone }

func (r *ToolRail) Handle(a types.Action) {
	switch a.Kind {
	case types.ToggleExplorer:
		r.toggle(RailExplorer)
	case types.NoOp, types.ExitApp, types.ToggleFullScreen, types.ToggleDecorations,
		types.ToggleStatusBar, types.ToggleToolBar, types.ToggleTerminal,
		types.ToggleVerticalTabBar, types.ZoomIn, types.ZoomOut, types.ZoomReset, types.ZoomSet,
		types.OpenDebugWindow, types.OpenPuffinViewer, types.OpenAboutWindow,
		types.OpenSettingWindow, types.OpenFolder, types.SetOpenDir:
	}
}
