// Package document keeps the set of open files and the current selection.
package document

import (
	"path/filepath"

	"codeshell/internal/textcodec"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Cursor is the caret summary reported by the text widget, zero based.
type Cursor struct {
	Row       int
	Column    int
	Selection int
}

// Document is one open file.
type Document struct {
	id          uuid.UUID
	path        string
	content     string
	changed     bool
	encoding    textcodec.Encoding
	lineEnding  textcodec.LineEnding
	contentType string
	size        int
	cursor      *Cursor
}

func newDocument(path string, raw []byte, text string, enc textcodec.Encoding) *Document {
	sample := raw
	if len(sample) > textcodec.SampleSize {
		sample = sample[:textcodec.SampleSize]
	}
	return &Document{
		id:          uuid.New(),
		path:        path,
		content:     text,
		encoding:    enc,
		lineEnding:  textcodec.DetectLineEnding(text),
		contentType: mimetype.Detect(sample).String(),
		size:        len(raw),
	}
}

func (d *Document) ID() uuid.UUID                    { return d.id }
func (d *Document) Path() string                     { return d.path }
func (d *Document) Name() string                     { return filepath.Base(d.path) }
func (d *Document) Content() string                  { return d.content }
func (d *Document) Changed() bool                    { return d.changed }
func (d *Document) Encoding() textcodec.Encoding     { return d.encoding }
func (d *Document) LineEnding() textcodec.LineEnding { return d.lineEnding }
func (d *Document) ContentType() string              { return d.contentType }

// Size is the byte size of the file as last read or written.
func (d *Document) Size() int { return d.size }

// Title is the tab label: the file name, marked when unsaved.
func (d *Document) Title() string {
	if d.changed {
		return d.Name() + " [+]"
	}
	return d.Name()
}

// Cursor returns the one-based row and column and the selection length.
// ok is false until the text widget has reported a position.
func (d *Document) Cursor() (row, col, selected int, ok bool) {
	if d.cursor == nil {
		return 0, 0, 0, false
	}
	return d.cursor.Row + 1, d.cursor.Column + 1, d.cursor.Selection, true
}
