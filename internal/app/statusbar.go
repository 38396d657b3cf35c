package app

import (
	"fmt"

	"codeshell/internal/document"
	"codeshell/pkg/types"

	"github.com/dustin/go-humanize"
)

// StatusItemID names a status bar field.
type StatusItemID int

const (
	StatusFilePath StatusItemID = iota
	StatusFileEncoding
	StatusFileLineEnding
	StatusCursor
	StatusFileSize
	StatusContentType
	StatusZoom
	StatusFPS
)

// StatusItem is one rendered field. Right aligned items follow the
// left ones.
type StatusItem struct {
	ID    StatusItemID
	Text  string
	Right bool
}

// StatusBar describes the current document.
type StatusBar struct{}

// NewStatusBar returns a StatusBar.
func NewStatusBar() *StatusBar { return &StatusBar{} }

// Items renders the fields for doc, which may be nil, followed by the
// zoom and the frame rate.
func (b *StatusBar) Items(doc *document.Document, zoom float32, frames FrameStats) []StatusItem {
	var items []StatusItem
	if doc != nil {
		path := doc.Path()
		if doc.Changed() {
			path += " [+]"
		}
		items = append(items,
			StatusItem{ID: StatusFilePath, Text: path},
			StatusItem{ID: StatusFileEncoding, Text: doc.Encoding().Name(), Right: true},
			StatusItem{ID: StatusFileLineEnding, Text: doc.LineEnding().String(), Right: true},
		)
		if row, col, sel, ok := doc.Cursor(); ok {
			items = append(items, StatusItem{ID: StatusCursor, Text: fmt.Sprintf("Row %d, Col %d (%d Selected)", row, col, sel), Right: true})
		}
		items = append(items,
			StatusItem{ID: StatusFileSize, Text: humanize.Bytes(uint64(doc.Size())), Right: true},
			StatusItem{ID: StatusContentType, Text: doc.ContentType(), Right: true},
		)
	}
	items = append(items,
		StatusItem{ID: StatusZoom, Text: fmt.Sprintf("%d%%", int(zoom*100+0.5)), Right: true},
		StatusItem{ID: StatusFPS, Text: fmt.Sprintf("FPS: %.1f CPU: %.2f ms/frame",
			frames.FPS, float64(frames.FrameTime.Microseconds())/1000), Right: true},
	)
	return items
}

func (b *StatusBar) Handle(a types.Action) {
	switch a.Kind {
	case types.NoOp, types.ExitApp, types.ToggleFullScreen, types.ToggleDecorations,
		types.ToggleStatusBar, types.ToggleToolBar, types.ToggleExplorer, types.ToggleTerminal,
		types.ToggleVerticalTabBar, types.ZoomIn, types.ZoomOut, types.ZoomReset, types.ZoomSet,
		types.OpenDebugWindow, types.OpenPuffinViewer, types.OpenAboutWindow,
		types.OpenSettingWindow, types.OpenFolder, types.SetOpenDir:
	}
}
