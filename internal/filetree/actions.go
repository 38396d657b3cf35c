package filetree

import (
	"fmt"
	"path/filepath"
	"time"

	"codeshell/internal/platform"
)

// Opener opens a file as a document.
type Opener interface {
	Open(path string) error
}

// CopyFullPath puts the absolute path of id on the clipboard.
func (t *Tree) CopyFullPath(id NodeID, cb platform.Clipboard) error {
	if !t.Valid(id) {
		return fmt.Errorf("no node %d", id)
	}
	return cb.SetText(t.Path(id))
}

// RelativePath returns the path of id relative to the root folder.
func (t *Tree) RelativePath(id NodeID) string {
	rel, err := filepath.Rel(t.RootPath(), t.Path(id))
	if err != nil {
		return t.Path(id)
	}
	return rel
}

// CopyRelativePath puts the root relative path of id on the clipboard.
func (t *Tree) CopyRelativePath(id NodeID, cb platform.Clipboard) error {
	if !t.Valid(id) {
		return fmt.Errorf("no node %d", id)
	}
	return cb.SetText(t.RelativePath(id))
}

// Reveal shows id in the platform file manager.
func (t *Tree) Reveal(id NodeID, sh platform.Shell) error {
	if !t.Valid(id) {
		return fmt.Errorf("no node %d", id)
	}
	return sh.Reveal(t.Path(id))
}

// Activate toggles a directory or opens a file. A file that cannot be
// opened is reported through n for d.
func (t *Tree) Activate(id NodeID, opener Opener, n platform.Notifier, d time.Duration) {
	if !t.Valid(id) {
		return
	}
	if t.Kind(id) == Dir {
		t.Toggle(id)
		return
	}
	if err := opener.Open(t.Path(id)); err != nil {
		n.Notify(platform.LevelError, fmt.Sprintf("Failed to open %s: %v", t.Path(id), err), d)
	}
}
