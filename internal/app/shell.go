// Package app holds the top level state of codeshell and routes bus
// actions to the components that own them.
package app

import (
	"fmt"
	"math"
	"time"

	"codeshell/internal/bus"
	"codeshell/internal/config"
	"codeshell/internal/document"
	"codeshell/internal/filetree"
	"codeshell/internal/keymap"
	"codeshell/internal/log"
	"codeshell/internal/platform"
	"codeshell/pkg/types"
)

// ZoomStep is the change applied by ZoomIn and ZoomOut.
const ZoomStep float32 = 0.1

// State is the view state toggled by actions.
type State struct {
	ExitRequested  bool
	ExitPending    bool
	FullScreen     bool
	Decorations    bool
	DefaultZoom    float32
	Zoom           float32
	VerticalTabBar bool
	ToolBar        bool
	StatusBar      bool
	Terminal       bool
	DebugWindow    bool
	AboutWindow    bool
	SettingWindow  bool
}

// RenderConfig is the part of the look the host hands in every frame.
type RenderConfig struct {
	DarkMode     bool
	Transparency float32
}

// Deps are the collaborators a Shell talks to.
type Deps struct {
	FS        platform.FileSystem
	Clipboard platform.Clipboard
	Shell     platform.Shell
	Notifier  platform.Notifier
	// Now is the clock used for frame timing.
	Now func() time.Time
}

// Shell owns the application state.
type Shell struct {
	state State

	bus        *bus.Bus
	keys       *keymap.Table
	dispatcher *Dispatcher

	tree   *filetree.Tree
	docs   *document.Manager
	menu   *MenuBar
	rail   *ToolRail
	status *StatusBar

	deps        Deps
	treeOpts    []filetree.Option
	duration    time.Duration
	profilerURL string

	render  *RenderConfig
	frames  uint64
	history FrameHistory
}

// New builds a Shell from cfg. Bad user key bindings are skipped and
// reported through the notifier.
func New(cfg *config.Config, deps Deps) (*Shell, error) {
	if deps.FS == nil {
		deps.FS = platform.OSFileSystem{}
	}
	if deps.Clipboard == nil {
		deps.Clipboard = &platform.MemoryClipboard{}
	}
	if deps.Notifier == nil {
		deps.Notifier = platform.NewToaster()
	}
	if deps.Shell == nil {
		deps.Shell = platform.NewOSShell(nil)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	s := &Shell{
		state: State{
			Decorations:    true,
			DefaultZoom:    clampZoom(cfg.View.Zoom),
			Zoom:           clampZoom(cfg.View.Zoom),
			VerticalTabBar: cfg.View.VerticalTabBar,
			ToolBar:        cfg.View.ShowToolBar,
			StatusBar:      cfg.View.ShowStatusBar,
			Terminal:       cfg.View.ShowTerminal,
		},
		bus:         bus.New(cfg.Bus.Capacity),
		deps:        deps,
		duration:    cfg.NotifyDuration(),
		profilerURL: cfg.Debug.ProfilerURL,
		treeOpts: []filetree.Option{
			filetree.WithFileSystem(deps.FS),
			filetree.WithShowHidden(cfg.Explorer.ShowHidden),
			filetree.WithExclude(cfg.Explorer.Exclude...),
		},
	}
	if s.duration <= 0 {
		s.duration = platform.DefaultDuration
	}
	// Reject bad exclude patterns now rather than on the first SetOpenDir.
	if _, err := filetree.New(".", s.treeOpts...); err != nil {
		return nil, err
	}
	if err := s.ReloadKeyBindings(cfg.KeyBindings); err != nil {
		return nil, err
	}

	s.docs = document.NewManager(deps.FS, deps.Notifier, document.WithNotifyDuration(s.duration))
	s.menu = NewMenuBar(s.Keys, s.bus)
	s.rail = NewToolRail(s.bus)
	s.status = NewStatusBar()
	s.dispatcher = newDispatcher(s.bus, s, s.docs, s.menu, s.rail, s.status)
	return s, nil
}

// ReloadKeyBindings replaces the binding table with the defaults plus
// user. Bindings that fail to load are reported and skipped.
func (s *Shell) ReloadKeyBindings(user []config.KeyBinding) error {
	table := keymap.NewTable()
	if err := table.LoadDefaults(); err != nil {
		return err
	}
	bindings := make([]keymap.Binding, len(user))
	for i, b := range user {
		bindings[i] = keymap.Binding{Keys: b.Keys, Action: b.Action}
	}
	if errs := table.LoadUser(bindings); len(errs) > 0 {
		s.deps.Notifier.Notify(platform.LevelWarning,
			fmt.Sprintf("%d key binding(s) skipped: %v", len(errs), errs[0]), s.notifyDuration())
	}
	s.keys = table
	return nil
}

func (s *Shell) notifyDuration() time.Duration {
	if s.duration <= 0 {
		return platform.DefaultDuration
	}
	return s.duration
}

// Dispatch handles every action queued since the previous frame.
func (s *Shell) Dispatch() int {
	s.frames++
	// A pending exit only confirms the unsaved state it warned about.
	if s.state.ExitPending && !s.docs.HasUnsaved() {
		s.state.ExitPending = false
	}
	start := s.deps.Now()
	n := s.dispatcher.Dispatch()
	s.history.Record(start, s.deps.Now().Sub(start))
	return n
}

// ResolveKeys publishes the actions bound to the chords pressed in frame.
func (s *Shell) ResolveKeys(frame keymap.InputFrame) int {
	return s.keys.ResolveAndDispatch(frame, s.bus)
}

// Send publishes an action for the next Dispatch.
func (s *Shell) Send(a types.Action) bool { return s.bus.Send(a) }

func (s *Shell) State() State                 { return s.state }
func (s *Shell) Bus() *bus.Bus                { return s.bus }
func (s *Shell) Keys() *keymap.Table          { return s.keys }
func (s *Shell) Tree() *filetree.Tree         { return s.tree }
func (s *Shell) Documents() *document.Manager { return s.docs }
func (s *Shell) Menu() *MenuBar               { return s.menu }
func (s *Shell) Rail() *ToolRail              { return s.rail }
func (s *Shell) Notifier() platform.Notifier  { return s.deps.Notifier }
func (s *Shell) Frames() uint64               { return s.frames }
func (s *Shell) FrameStats() FrameStats       { return s.history.Stats() }

// History returns the most recently dispatched actions.
func (s *Shell) History() []types.Action { return s.dispatcher.History() }

// StatusItems renders the status bar for the current document.
func (s *Shell) StatusItems() []StatusItem {
	return s.status.Items(s.docs.Current(), s.state.Zoom, s.history.Stats())
}

// CloseWindows hides the debug, about and setting windows.
func (s *Shell) CloseWindows() {
	s.state.DebugWindow = false
	s.state.AboutWindow = false
	s.state.SettingWindow = false
}

// ApplyRenderConfig records the look used for this frame. The tool rail
// drops its transient state when dark mode flips.
func (s *Shell) ApplyRenderConfig(rc RenderConfig) {
	if s.render != nil && s.render.DarkMode != rc.DarkMode {
		log.Debugf("Dark mode changed to %t", rc.DarkMode)
		s.rail.Reset()
	}
	s.render = &rc
}

// ActivateNode opens a file of the explorer or toggles a directory.
func (s *Shell) ActivateNode(id filetree.NodeID) {
	if s.tree == nil {
		return
	}
	s.tree.Activate(id, s.docs, s.deps.Notifier, s.notifyDuration())
}

// CopyNodePath puts the path of id on the clipboard, relative to the
// opened folder when relative is set.
func (s *Shell) CopyNodePath(id filetree.NodeID, relative bool) {
	if s.tree == nil {
		return
	}
	var err error
	if relative {
		err = s.tree.CopyRelativePath(id, s.deps.Clipboard)
	} else {
		err = s.tree.CopyFullPath(id, s.deps.Clipboard)
	}
	s.report("Failed to copy path", err)
}

// RevealNode shows id in the file manager.
func (s *Shell) RevealNode(id filetree.NodeID) {
	if s.tree == nil {
		return
	}
	s.report("Failed to reveal", s.tree.Reveal(id, s.deps.Shell))
}

func (s *Shell) report(msg string, err error) {
	if err == nil {
		return
	}
	log.LogWithError(err).Warn(msg)
	s.deps.Notifier.Notify(platform.LevelError, fmt.Sprintf("%s: %v", msg, err), s.notifyDuration())
}

func clampZoom(z float32) float32 {
	if math.IsNaN(float64(z)) {
		z = 1
	}
	z = min(max(z, config.MinZoom), config.MaxZoom)
	return float32(math.Round(float64(z)*10) / 10)
}

func (s *Shell) Handle(a types.Action) {
	if a.Kind != types.ExitApp {
		s.state.ExitPending = false
	}
	switch a.Kind {
	case types.NoOp:
	case types.ExitApp:
		if s.docs.HasUnsaved() && !s.state.ExitPending {
			s.state.ExitPending = true
			s.deps.Notifier.Notify(platform.LevelWarning,
				"There are unsaved documents. Exit again to discard them.", s.notifyDuration())
			return
		}
		s.state.ExitRequested = true
	case types.ToggleFullScreen:
		s.state.FullScreen = !s.state.FullScreen
	case types.ToggleDecorations:
		s.state.Decorations = !s.state.Decorations
	case types.ToggleStatusBar:
		s.state.StatusBar = !s.state.StatusBar
	case types.ToggleToolBar:
		s.state.ToolBar = !s.state.ToolBar
	case types.ToggleExplorer:
	case types.ToggleTerminal:
		s.state.Terminal = !s.state.Terminal
	case types.ToggleVerticalTabBar:
		s.state.VerticalTabBar = !s.state.VerticalTabBar
	case types.ZoomIn:
		s.state.Zoom = clampZoom(s.state.Zoom + ZoomStep)
	case types.ZoomOut:
		s.state.Zoom = clampZoom(s.state.Zoom - ZoomStep)
	case types.ZoomReset:
		s.state.Zoom = s.state.DefaultZoom
	case types.ZoomSet:
		s.state.Zoom = clampZoom(a.Zoom)
	case types.OpenDebugWindow:
		s.state.DebugWindow = !s.state.DebugWindow
	case types.OpenPuffinViewer:
		if s.profilerURL == "" {
			s.deps.Notifier.Notify(platform.LevelInfo, "No profiler configured (debug.profiler_url)", s.notifyDuration())
			return
		}
		s.report("Failed to open profiler", s.deps.Shell.OpenURL(s.profilerURL))
	case types.OpenAboutWindow:
		s.state.AboutWindow = true
	case types.OpenSettingWindow:
		s.state.SettingWindow = true
	case types.OpenFolder:
		if dir, ok := s.deps.Shell.PickFolder(); ok {
			s.bus.Send(types.OpenDir(dir))
		}
	case types.SetOpenDir:
		s.openDir(a.Dir)
	}
}

func (s *Shell) openDir(dir string) {
	tree, err := filetree.New(dir, s.treeOpts...)
	if err != nil {
		s.report("Failed to open folder", err)
		return
	}
	log.LogWithFields(log.F("path", tree.RootPath())).Info("Opened folder")
	s.tree = tree
	if !s.rail.ExplorerVisible() {
		s.bus.Send(types.Do(types.ToggleExplorer))
	}
}
