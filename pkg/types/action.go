package types

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"codeshell/internal/errors"
)

// ActionKind enumerates every command the shell understands.
// The set is closed: handlers switch over all of it.
type ActionKind int

const (
	NoOp ActionKind = iota
	ExitApp
	ToggleFullScreen
	ToggleDecorations
	ToggleStatusBar
	ToggleToolBar
	ToggleExplorer
	ToggleTerminal
	ToggleVerticalTabBar
	ZoomIn
	ZoomOut
	ZoomReset
	ZoomSet
	OpenDebugWindow
	OpenPuffinViewer
	OpenAboutWindow
	OpenSettingWindow
	OpenFolder
	SetOpenDir

	kindCount
)

var kindNames = [kindCount]string{
	NoOp:                 "NoOp",
	ExitApp:              "ExitApp",
	ToggleFullScreen:     "ToggleFullScreen",
	ToggleDecorations:    "ToggleDecorations",
	ToggleStatusBar:      "ToggleStatusBar",
	ToggleToolBar:        "ToggleToolBar",
	ToggleExplorer:       "ToggleExplorer",
	ToggleTerminal:       "ToggleTerminal",
	ToggleVerticalTabBar: "ToggleVerticalTabBar",
	ZoomIn:               "ZoomIn",
	ZoomOut:              "ZoomOut",
	ZoomReset:            "ZoomReset",
	ZoomSet:              "ZoomSet",
	OpenDebugWindow:      "OpenDebugWindow",
	OpenPuffinViewer:     "OpenPuffinViewer",
	OpenAboutWindow:      "OpenAboutWindow",
	OpenSettingWindow:    "OpenSettingWindow",
	OpenFolder:           "OpenFolder",
	SetOpenDir:           "SetOpenDir",
}

// Name returns the stable symbolic name of the kind.
func (k ActionKind) Name() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return kindNames[k]
}

func (k ActionKind) String() string { return k.Name() }

// HasPayload reports whether actions of this kind carry data.
func (k ActionKind) HasPayload() bool {
	return k == ZoomSet || k == SetOpenDir
}

// Kinds lists the whole vocabulary in declaration order.
func Kinds() []ActionKind {
	kinds := make([]ActionKind, kindCount)
	for i := range kinds {
		kinds[i] = ActionKind(i)
	}
	return kinds
}

// Action is a command published on the bus. Zoom is only meaningful for
// ZoomSet and Dir only for SetOpenDir; both stay zero otherwise so that
// actions compare structurally with ==.
type Action struct {
	Kind ActionKind
	Zoom float32
	Dir  string
}

// Do builds a payload-free action.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// SetZoom builds a ZoomSet action.
func SetZoom(value float32) Action {
	return Action{Kind: ZoomSet, Zoom: value}
}

// OpenDir builds a SetOpenDir action.
func OpenDir(path string) Action {
	return Action{Kind: SetOpenDir, Dir: path}
}

// Name returns the symbolic name, ignoring the payload.
func (a Action) Name() string { return a.Kind.Name() }

func (a Action) String() string {
	switch a.Kind {
	case ZoomSet:
		return fmt.Sprintf("%s(%s)", a.Kind.Name(), strconv.FormatFloat(float64(a.Zoom), 'g', -1, 32))
	case SetOpenDir:
		return fmt.Sprintf("%s(%s)", a.Kind.Name(), a.Dir)
	default:
		return a.Kind.Name()
	}
}

// Compare orders actions by kind, then zoom, then directory.
func Compare(a, b Action) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Zoom, b.Zoom); c != 0 {
		return c
	}
	return cmp.Compare(a.Dir, b.Dir)
}

// ParseAction resolves "Name" or "Name(arg)" into an action.
// Payload kinds require the argument; the others reject one.
func ParseAction(text string) (Action, error) {
	text = strings.TrimSpace(text)
	name, arg, hasArg := text, "", false
	if open := strings.IndexByte(text, '('); open >= 0 {
		if !strings.HasSuffix(text, ")") {
			return Action{}, errors.NewParseError("unknown action", text, errors.UnknownAction, nil)
		}
		name, arg, hasArg = text[:open], text[open+1:len(text)-1], true
	}

	kind, ok := kindByName(name)
	if !ok {
		return Action{}, errors.NewParseError("unknown action", text, errors.UnknownAction, nil)
	}
	if kind.HasPayload() != hasArg {
		return Action{}, errors.NewParseError("wrong action argument", text, errors.UnknownAction, nil)
	}

	switch kind {
	case ZoomSet:
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 32)
		if err != nil {
			return Action{}, errors.NewParseError("invalid zoom value", text, errors.UnknownAction, err)
		}
		return SetZoom(float32(v)), nil
	case SetOpenDir:
		if strings.TrimSpace(arg) == "" {
			return Action{}, errors.NewParseError("empty directory", text, errors.UnknownAction, nil)
		}
		return OpenDir(strings.TrimSpace(arg)), nil
	default:
		return Do(kind), nil
	}
}

func kindByName(name string) (ActionKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return ActionKind(i), true
		}
	}
	return 0, false
}
