// Package tui is the terminal host of codeshell. It turns key presses
// into bus actions, runs one dispatch per frame and draws the state.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeshell/internal/app"
	"codeshell/internal/config"
	"codeshell/internal/document"
	"codeshell/internal/filetree"
	"codeshell/internal/keymap"
	"codeshell/internal/log"
	"codeshell/internal/platform"
	"codeshell/internal/tui/components"
	"codeshell/internal/tui/messages"
	"codeshell/internal/tui/styles"
	"codeshell/internal/tui/views"
	"codeshell/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	railWidth      = 4
	terminalHeight = 5
	tickInterval   = 250 * time.Millisecond
	historyShown   = 8
)

type Model struct {
	shell   *app.Shell
	cfg     *config.Config
	picker  *Picker
	toaster *platform.Toaster
	updates <-chan *config.Config
	version string

	keys   types.KeyMap
	help   help.Model
	styles styles.Styles

	// Focus state
	focus       types.Focus
	returnFocus types.Focus

	explorer *components.FileTree
	tabs     *components.Tabs
	menu     *components.Menu
	status   *components.StatusBar

	// Editor state
	editor  textarea.Model
	editing uuid.UUID
	loaded  string

	prompt    textinput.Model
	prompting bool

	fullScreen bool
	width      int
	height     int
	bodyHeight int
	panelWidth int
}

// Option configures a Model.
type Option func(*Model)

// WithUpdates makes the host apply configurations received on ch.
func WithUpdates(ch <-chan *config.Config) Option {
	return func(m *Model) { m.updates = ch }
}

// WithVersion sets the version shown in the about window.
func WithVersion(v string) Option {
	return func(m *Model) { m.version = v }
}

// New creates the host for shell. picker must be the picker the shell's
// platform.Shell asks for folders.
func New(shell *app.Shell, cfg *config.Config, picker *Picker, opts ...Option) *Model {
	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.Placeholder = ""
	editor.Focus()

	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.CharLimit = 4096

	m := &Model{
		shell:    shell,
		cfg:      cfg,
		picker:   picker,
		version:  "dev",
		keys:     types.DefaultKeyMap(),
		help:     help.New(),
		styles:   styles.ForTheme(cfg.View.Theme),
		focus:    types.FocusEditor,
		explorer: components.NewFileTree(),
		tabs:     &components.Tabs{},
		menu:     components.NewMenu(shell.Menu()),
		status:   components.NewStatusBar(),
		editor:   editor,
		prompt:   prompt,
		width:    80,
		height:   24,
	}
	if t, ok := shell.Notifier().(*platform.Toaster); ok {
		m.toaster = t
	}
	for _, opt := range opts {
		opt(m)
	}
	m.layout()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tick(), m.waitForConfig(), m.frame())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return messages.TickMsg{} })
}

func (m *Model) waitForConfig() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	ch := m.updates
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return messages.ConfigUpdateMsg{Config: cfg}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		m.handleMouse(msg)
	case messages.ConfigUpdateMsg:
		m.applyConfig(msg.Config)
		cmds = append(cmds, m.waitForConfig())
	case messages.TickMsg:
		cmds = append(cmds, tick())
	case messages.FrameMsg:
	default:
		var cmd tea.Cmd
		if m.prompting {
			m.prompt, cmd = m.prompt.Update(msg)
		} else {
			m.editor, cmd = m.editor.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.frame())
	return m, tea.Batch(cmds...)
}

// frame runs one dispatch and brings the widgets in line with the state.
func (m *Model) frame() tea.Cmd {
	m.shell.ApplyRenderConfig(app.RenderConfig{DarkMode: m.cfg.DarkMode(), Transparency: m.cfg.View.Transparency})
	m.shell.Dispatch()

	if m.picker != nil && m.picker.TakeRequest() {
		m.openPrompt()
	}
	m.syncExplorer()
	m.syncEditor()
	m.layout()

	state := m.shell.State()
	if state.ExitRequested {
		return tea.Quit
	}

	var cmds []tea.Cmd
	if state.FullScreen != m.fullScreen {
		m.fullScreen = state.FullScreen
		if m.fullScreen {
			cmds = append(cmds, tea.EnterAltScreen)
		} else {
			cmds = append(cmds, tea.ExitAltScreen)
		}
	}
	// Actions published while handling wait for the next frame.
	if m.shell.Bus().Len() > 0 {
		cmds = append(cmds, func() tea.Msg { return messages.FrameMsg{} })
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncExplorer() {
	if tree := m.shell.Tree(); tree != m.explorer.Tree() {
		m.explorer.SetTree(tree)
	} else {
		m.explorer.Reload()
	}
	if m.focus == types.FocusExplorer && !m.shell.Rail().ExplorerVisible() {
		m.setFocus(types.FocusEditor)
	}
}

func (m *Model) syncEditor() {
	docs := m.shell.Documents()
	changed := docs.TakeCurrentChanged()
	cur := docs.Current()
	if cur == nil {
		if m.editing != uuid.Nil {
			m.editing = uuid.Nil
			m.editor.SetValue("")
			m.loaded = ""
		}
		return
	}
	if changed || cur.ID() != m.editing {
		m.editing = cur.ID()
		m.editor.SetValue(cur.Content())
		m.loaded = m.editor.Value()
		m.tabs.Cursor = docs.CurrentIndex()
	}
	m.tabs.Clamp(docs.Len())
}

func (m *Model) layout() {
	state := m.shell.State()

	h := m.height - 1 // help line
	if state.Decorations {
		h--
	}
	if state.StatusBar {
		h--
	}
	if state.Terminal {
		h -= terminalHeight
	}
	m.bodyHeight = max(h, 4)

	w := m.width
	if state.ToolBar {
		w -= railWidth
	}
	m.panelWidth = 0
	if m.shell.Rail().Current() != app.RailNone {
		m.panelWidth = min(32, max(w/3, 12))
		w -= m.panelWidth
	}
	m.explorer.Width = max(m.panelWidth-2, 1)
	m.explorer.Height = max(m.bodyHeight-3, 1)
	m.explorer.EnsureCursorVisible()

	editorHeight := m.bodyHeight
	m.tabs.Vertical = state.VerticalTabBar
	if m.shell.Documents().Len() > 0 {
		if state.VerticalTabBar {
			w -= 21
		} else {
			editorHeight--
		}
	}
	m.editor.SetWidth(max(w, 10))
	m.editor.SetHeight(max(editorHeight, 1))
	m.prompt.Width = max(m.width-20, 10)
	m.status.Width = m.width
	m.help.Width = m.width
}

func (m *Model) setFocus(f types.Focus) {
	m.focus = f
	if f == types.FocusEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
}

// cycleFocus moves to the next zone that can take keys.
func (m *Model) cycleFocus() {
	order := []types.Focus{types.FocusEditor, types.FocusExplorer, types.FocusTabs}
	usable := func(f types.Focus) bool {
		switch f {
		case types.FocusExplorer:
			return m.shell.Rail().ExplorerVisible() && m.shell.Tree() != nil
		case types.FocusTabs:
			return m.shell.Documents().Len() > 0
		default:
			return true
		}
	}
	start := 0
	for i, f := range order {
		if f == m.focus {
			start = i
		}
	}
	for i := 1; i <= len(order); i++ {
		if f := order[(start+i)%len(order)]; usable(f) {
			m.setFocus(f)
			return
		}
	}
}

func (m *Model) notify(level platform.Level, msg string) {
	m.shell.Notifier().Notify(level, msg, m.cfg.NotifyDuration())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.prompting {
		return m.handlePromptKey(msg)
	}
	if m.menu.IsOpen() {
		m.handleMenuKey(msg)
		return nil
	}

	if chord, ok := chordFromKey(msg); ok {
		if m.shell.ResolveKeys(&keyFrame{chord: chord}) > 0 {
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.CycleFocus):
		m.cycleFocus()
		return nil
	case key.Matches(msg, m.keys.Menu):
		m.returnFocus = m.focus
		m.setFocus(types.FocusMenu)
		m.menu.Open(0)
		return nil
	case key.Matches(msg, m.keys.Cancel):
		if s := m.shell.State(); s.DebugWindow || s.AboutWindow || s.SettingWindow {
			m.shell.CloseWindows()
			return nil
		}
		m.setFocus(types.FocusEditor)
		return nil
	}

	switch m.focus {
	case types.FocusExplorer:
		m.handleExplorerKey(msg)
		return nil
	case types.FocusTabs:
		m.handleTabsKey(msg)
		return nil
	default:
		return m.handleEditorKey(msg)
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menu.Up()
	case key.Matches(msg, m.keys.Down):
		m.menu.Down()
	case key.Matches(msg, m.keys.Left):
		m.menu.Left()
	case key.Matches(msg, m.keys.Right):
		m.menu.Right()
	case key.Matches(msg, m.keys.Enter):
		a, ok := m.menu.Selected()
		if !ok {
			return
		}
		m.closeMenu()
		m.shell.Menu().Activate(a)
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Menu):
		m.closeMenu()
	}
}

func (m *Model) closeMenu() {
	m.menu.Close()
	m.setFocus(m.returnFocus)
}

func (m *Model) handleExplorerKey(msg tea.KeyMsg) {
	tree := m.explorer.Tree()
	row, ok := m.explorer.Current()
	if tree == nil || !ok {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.explorer.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.explorer.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.explorer.Collapse()
	case key.Matches(msg, m.keys.Right):
		m.explorer.Expand()
	case key.Matches(msg, m.keys.Enter):
		m.shell.ActivateNode(row.ID)
		m.explorer.Reload()
		m.explorer.Select(row.ID)
		if row.Kind == filetree.File && m.shell.Documents().IsCurrent(tree.Path(row.ID)) {
			m.setFocus(types.FocusEditor)
		}
	case key.Matches(msg, m.keys.CopyPath):
		m.shell.CopyNodePath(row.ID, false)
	case key.Matches(msg, m.keys.CopyRelativePath):
		m.shell.CopyNodePath(row.ID, true)
	case key.Matches(msg, m.keys.Reveal):
		m.shell.RevealNode(row.ID)
	case key.Matches(msg, m.keys.Refresh):
		dir := row.ID
		if row.Kind == filetree.File {
			dir = tree.Parent(row.ID)
		}
		tree.Refresh(dir)
		m.explorer.Reload()
		m.explorer.Select(dir)
	}
}

func (m *Model) handleTabsKey(msg tea.KeyMsg) {
	docs := m.shell.Documents()
	if docs.Len() == 0 {
		return
	}
	c := m.tabs.Cursor

	switch {
	case key.Matches(msg, m.keys.Left):
		m.tabs.Cursor--
		m.tabs.Clamp(docs.Len())
		docs.Select(m.tabs.Cursor)
	case key.Matches(msg, m.keys.Right):
		m.tabs.Cursor++
		m.tabs.Clamp(docs.Len())
		docs.Select(m.tabs.Cursor)
	case key.Matches(msg, m.keys.Enter):
		docs.Select(c)
		m.setFocus(types.FocusEditor)
	case key.Matches(msg, m.keys.CloseTab):
		docs.Close(document.Single(c))
	case key.Matches(msg, m.keys.CloseOthers):
		docs.Close(document.Others(c))
	case key.Matches(msg, m.keys.CloseToRight):
		docs.Close(document.ToRight(c))
	case key.Matches(msg, m.keys.CloseSaved):
		docs.Close(document.Saved())
	case key.Matches(msg, m.keys.CloseAll):
		docs.Close(document.All())
	}
	m.tabs.Clamp(docs.Len())
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	docs := m.shell.Documents()
	cur := docs.CurrentIndex()
	if cur == document.NoDocument {
		return nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Save):
		if err := docs.SaveCurrent(); err == nil {
			m.notify(platform.LevelInfo, "Saved "+docs.Current().Name())
		}
		return nil
	case key.Matches(msg, m.keys.NewlineIndent):
		m.editor.InsertString("\n" + document.NextLineIndent(m.currentLine()))
	default:
		m.editor, cmd = m.editor.Update(msg)
	}

	if v := m.editor.Value(); v != m.loaded {
		docs.SetContent(cur, v)
		m.loaded = v
	}
	info := m.editor.LineInfo()
	docs.SetCursor(cur, document.Cursor{Row: m.editor.Line(), Column: info.StartColumn + info.ColumnOffset})
	return cmd
}

func (m *Model) currentLine() string {
	lines := strings.Split(m.editor.Value(), "\n")
	if i := m.editor.Line(); i >= 0 && i < len(lines) {
		return lines[i]
	}
	return ""
}

func (m *Model) openPrompt() {
	start := ""
	if tree := m.shell.Tree(); tree != nil {
		start = tree.RootPath()
	} else if wd, err := os.Getwd(); err == nil {
		start = wd
	}
	m.prompt.SetValue(start)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.prompting = true
	m.editor.Blur()
}

func (m *Model) closePrompt() {
	m.prompt.Blur()
	m.prompting = false
	m.setFocus(m.focus)
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return nil
	case tea.KeyEnter:
		path := expandHome(strings.TrimSpace(m.prompt.Value()))
		m.closePrompt()
		if path == "" {
			return nil
		}
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			m.notify(platform.LevelError, "Not a folder: "+path)
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		m.shell.Send(types.OpenDir(path))
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	state := m.shell.State()
	rail := m.shell.Rail()
	if !state.ToolBar {
		return
	}
	top := 0
	if state.Decorations {
		top = 1
	}
	item, ok := components.RailItemAt(rail, msg.Y-top, m.bodyHeight)
	if msg.X >= railWidth || !ok {
		rail.Hover(app.RailNone)
		return
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		rail.Click(item)
	case msg.Action == tea.MouseActionMotion:
		rail.Hover(item)
	}
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.styles = styles.ForTheme(cfg.View.Theme)
	if err := m.shell.ReloadKeyBindings(cfg.KeyBindings); err != nil {
		log.LogWithError(err).Error("Failed to reload key bindings")
	}
	log.LogWithFields(log.F("theme", cfg.View.Theme), log.F("keybindings", len(cfg.KeyBindings))).Info("Configuration reloaded")
	m.notify(platform.LevelInfo, "Configuration reloaded")
}

// View implements tea.Model
func (m *Model) View() string {
	state := m.shell.State()
	if state.ExitRequested {
		return ""
	}
	st := m.styles
	docs := m.shell.Documents()

	l := views.Layout{Vertical: state.VerticalTabBar, Dropdown: m.menu.DropdownView(st)}
	if state.Decorations || m.menu.IsOpen() {
		l.MenuBar = m.menu.BarView(st)
	}
	if state.ToolBar {
		l.Rail = components.RailView(m.shell.Rail(), m.bodyHeight, st)
	}
	l.Panel = m.panelView()
	if docs.Len() > 0 {
		l.Tabs = m.tabs.View(docs.Documents(), docs.CurrentIndex(), st, m.focus == types.FocusTabs)
		l.Editor = m.editor.View()
	} else {
		l.Editor = st.Muted.Render("No document open. Open a folder with F10 › File › OpenFolder.")
	}
	if state.Terminal {
		l.Terminal = st.Panel.Width(max(m.width-2, 1)).Height(terminalHeight - 2).
			Render(st.Title.Render("TERMINAL") + "\n" + st.Muted.Render("No terminal session"))
	}
	l.Overlay = m.overlayView()
	l.Toasts = m.toastView()
	if m.prompting {
		l.Prompt = st.Title.Render("Open folder") + " " + m.prompt.View()
	}
	if state.StatusBar {
		l.Status = m.status.View(m.shell.StatusItems(), st)
	}
	l.Help = m.help.View(m.keys)
	return st.App.Render(views.RenderMainView(l))
}

func (m *Model) panelView() string {
	st := m.styles
	var title, body string
	switch item := m.shell.Rail().Current(); item {
	case app.RailExplorer:
		title = "EXPLORER"
		if tree := m.explorer.Tree(); tree != nil {
			title += " · " + filepath.Base(tree.RootPath())
		}
		body = m.explorer.View(st, m.focus == types.FocusExplorer)
	case app.RailNone:
		return ""
	default:
		title = strings.ToUpper(item.String())
		body = st.Muted.Render("Nothing here yet")
	}
	style := st.Panel
	if m.focus == types.FocusExplorer {
		style = st.PanelFocused
	}
	return style.Width(max(m.panelWidth-2, 1)).Height(max(m.bodyHeight-2, 1)).
		Render(st.Title.Render(title) + "\n" + body)
}

func (m *Model) overlayView() string {
	state := m.shell.State()
	st := m.styles
	var boxes []string

	if state.DebugWindow {
		b := m.shell.Bus()
		lines := []string{
			st.Title.Render("Debug"),
			fmt.Sprintf("Bus: %d/%d pending, %d dropped", b.Len(), b.Cap(), b.Dropped()),
			fmt.Sprintf("Frames: %d (%.1f FPS)  Zoom: %.1f", m.shell.Frames(), m.shell.FrameStats().FPS, state.Zoom),
			fmt.Sprintf("Documents: %d  Focus: %s", m.shell.Documents().Len(), m.focus),
			"Recent actions:",
		}
		history := m.shell.History()
		if len(history) > historyShown {
			history = history[len(history)-historyShown:]
		}
		for _, a := range history {
			lines = append(lines, "  "+a.String())
		}
		boxes = append(boxes, st.Overlay.Render(strings.Join(lines, "\n")))
	}
	if state.AboutWindow {
		boxes = append(boxes, st.Overlay.Render(st.Title.Render("codeshell "+m.version)+"\n"+
			"A keyboard driven editor shell.\nPress esc to close."))
	}
	if state.SettingWindow {
		lines := []string{
			st.Title.Render("Settings"),
			fmt.Sprintf("Theme: %s (available: %s)", m.cfg.View.Theme, strings.Join(config.ListThemes(), ", ")),
			fmt.Sprintf("Default zoom: %.1f", state.DefaultZoom),
			fmt.Sprintf("Show hidden files: %t", m.cfg.Explorer.ShowHidden),
			"Key bindings:",
		}
		for _, e := range m.shell.Keys().Entries() {
			line := fmt.Sprintf("  %-18s %s", keymap.FormatChord(e.Chord), e.Action)
			if alt := Alternative(e.Chord, e.Action, m.shell.Menu()); alt != "" {
				line += " (" + alt + ")"
			}
			lines = append(lines, line)
		}
		boxes = append(boxes, st.Overlay.Render(strings.Join(lines, "\n")))
	}
	return strings.Join(boxes, "\n")
}

func (m *Model) toastView() string {
	if m.toaster == nil {
		return ""
	}
	st := m.styles
	var lines []string
	for _, t := range m.toaster.Active() {
		switch t.Level {
		case platform.LevelError:
			lines = append(lines, st.Error.Render("✖ "+t.Message))
		case platform.LevelWarning:
			lines = append(lines, st.Warning.Render("▲ "+t.Message))
		default:
			lines = append(lines, st.Info.Render("● "+t.Message))
		}
	}
	return strings.Join(lines, "\n")
}
