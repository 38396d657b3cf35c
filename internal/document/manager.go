package document

import (
	"fmt"
	"path/filepath"
	"time"

	"codeshell/internal/errors"
	"codeshell/internal/log"
	"codeshell/internal/platform"
	"codeshell/internal/textcodec"
	"codeshell/pkg/types"
)

// NoDocument is the current index when nothing is selected.
const NoDocument = -1

// Manager owns the open documents in the order they were opened.
type Manager struct {
	docs           []*Document
	current        int
	currentChanged bool

	fs       platform.FileSystem
	notifier platform.Notifier
	duration time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifyDuration sets how long warnings and errors stay visible.
func WithNotifyDuration(d time.Duration) Option {
	return func(m *Manager) { m.duration = d }
}

// NewManager returns an empty manager.
func NewManager(fs platform.FileSystem, notifier platform.Notifier, opts ...Option) *Manager {
	m := &Manager{
		current:  NoDocument,
		fs:       fs,
		notifier: notifier,
		duration: platform.DefaultDuration,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func normalize(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Open makes path the current document, reading it unless it is already
// open. Unreadable or undecodable files are not added.
func (m *Manager) Open(path string) error {
	path = normalize(path)
	if i := m.IndexOf(path); i >= 0 {
		m.Select(i)
		return nil
	}

	raw, err := m.fs.ReadFile(path)
	if err != nil {
		return errors.NewIoError("cannot read file", path, errors.FileReadFailed, err)
	}
	enc := textcodec.DetectSample(raw)
	text, err := textcodec.Decode(raw, enc)
	if err != nil {
		return errors.NewIoError("cannot decode file", path, errors.DecodeFailed, err)
	}

	doc := newDocument(path, raw, text, enc)
	m.docs = append(m.docs, doc)
	m.Select(len(m.docs) - 1)

	log.LogWithFields(
		log.F("path", path),
		log.F("encoding", enc.Name()),
		log.F("line_ending", doc.lineEnding.String()),
	).Debug("Opened document")
	return nil
}

// Save writes document i back with the encoding it was read with.
// On failure the document stays marked as changed and the user is told.
func (m *Manager) Save(i int) error {
	doc := m.At(i)
	if doc == nil {
		return errors.Newf("no document at index %d", i)
	}

	data, err := textcodec.Encode(doc.content, doc.encoding)
	if err != nil {
		err = errors.NewIoError("cannot encode file", doc.path, errors.EncodeFailed, err)
	} else if werr := m.fs.WriteFile(doc.path, data); werr != nil {
		err = errors.NewIoError("cannot write file", doc.path, errors.FileWriteFailed, werr)
	}
	if err != nil {
		log.LogError(err, "Save failed")
		m.notifier.Notify(platform.LevelError, fmt.Sprintf("Failed to save %s: %v", doc.path, err), m.duration)
		return err
	}

	doc.changed = false
	doc.size = len(data)
	return nil
}

// SaveCurrent saves the current document, if any.
func (m *Manager) SaveCurrent() error {
	if m.current == NoDocument {
		return nil
	}
	return m.Save(m.current)
}

// SetContent replaces the text of document i, marking it changed when it
// differs.
func (m *Manager) SetContent(i int, text string) {
	doc := m.At(i)
	if doc == nil || doc.content == text {
		return
	}
	doc.content = text
	doc.changed = true
}

// SetCursor records the caret summary of document i.
func (m *Manager) SetCursor(i int, c Cursor) {
	if doc := m.At(i); doc != nil {
		doc.cursor = &c
	}
}

// Select makes i the current document. Out of range indices are ignored.
func (m *Manager) Select(i int) {
	if i < 0 || i >= len(m.docs) {
		return
	}
	m.current = i
	m.currentChanged = true
}

// TakeCurrentChanged reports whether the selection changed since the last
// call and clears the flag.
func (m *Manager) TakeCurrentChanged() bool {
	changed := m.currentChanged
	m.currentChanged = false
	return changed
}

// CurrentIndex returns the current index or NoDocument.
func (m *Manager) CurrentIndex() int { return m.current }

// Current returns the current document or nil.
func (m *Manager) Current() *Document {
	return m.At(m.current)
}

// IsCurrent reports whether path is the current document.
func (m *Manager) IsCurrent(path string) bool {
	doc := m.Current()
	return doc != nil && doc.path == normalize(path)
}

// At returns document i or nil.
func (m *Manager) At(i int) *Document {
	if i < 0 || i >= len(m.docs) {
		return nil
	}
	return m.docs[i]
}

// IndexOf returns the index of the document at path or -1.
func (m *Manager) IndexOf(path string) int {
	path = normalize(path)
	for i, d := range m.docs {
		if d.path == path {
			return i
		}
	}
	return -1
}

// Documents returns the open documents in order.
func (m *Manager) Documents() []*Document {
	return append([]*Document(nil), m.docs...)
}

// Len returns the number of open documents.
func (m *Manager) Len() int { return len(m.docs) }

// HasUnsaved reports whether any document has unsaved changes.
func (m *Manager) HasUnsaved() bool {
	for _, d := range m.docs {
		if d.changed {
			return true
		}
	}
	return false
}

// Handle reacts to bus actions. Documents have no action of their own.
func (m *Manager) Handle(a types.Action) {
	switch a.Kind {
	case types.NoOp, types.ExitApp, types.ToggleFullScreen, types.ToggleDecorations,
		types.ToggleStatusBar, types.ToggleToolBar, types.ToggleExplorer, types.ToggleTerminal,
		types.ToggleVerticalTabBar, types.ZoomIn, types.ZoomOut, types.ZoomReset, types.ZoomSet,
		types.OpenDebugWindow, types.OpenPuffinViewer, types.OpenAboutWindow,
		types.OpenSettingWindow, types.OpenFolder, types.SetOpenDir:
	}
}
