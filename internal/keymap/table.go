package keymap

import (
	"slices"
	"strings"

	"codeshell/internal/errors"
	"codeshell/internal/log"
	"codeshell/pkg/types"
)

// InputFrame is the host's view of the keys pressed during one frame.
// ConsumeChord reports whether chord was pressed and not yet consumed,
// and marks it consumed.
type InputFrame interface {
	ConsumeChord(types.KeyChord) bool
}

// Sender receives resolved actions.
type Sender interface {
	Send(types.Action) bool
}

// Entry is one chord to action binding.
type Entry struct {
	Chord  types.KeyChord
	Action types.Action
}

// Binding is an unparsed user binding, as read from configuration.
type Binding struct {
	Keys   string
	Action string
}

// Table maps chords to actions. A chord is bound at most once.
type Table struct {
	bindings map[types.KeyChord]types.Action
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{bindings: make(map[types.KeyChord]types.Action)}
}

// Insert binds chord to action. It never overwrites: binding a chord twice
// returns a ConflictError naming the action that already owns it.
func (t *Table) Insert(chord types.KeyChord, action types.Action) error {
	if existing, ok := t.bindings[chord]; ok {
		return errors.NewConflictError(FormatChord(chord), existing.String())
	}
	t.bindings[chord] = action
	return nil
}

// Lookup returns the action bound to chord.
func (t *Table) Lookup(chord types.KeyChord) (types.Action, bool) {
	a, ok := t.bindings[chord]
	return a, ok
}

// Len returns the number of bindings.
func (t *Table) Len() int { return len(t.bindings) }

// Entries returns every binding ordered by formatted chord.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.bindings))
	for c, a := range t.bindings {
		entries = append(entries, Entry{Chord: c, Action: a})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(FormatChord(a.Chord), FormatChord(b.Chord))
	})
	return entries
}

// KeysFor returns every chord bound to action, ordered by formatted chord.
func (t *Table) KeysFor(action types.Action) []types.KeyChord {
	var keys []types.KeyChord
	for _, e := range t.Entries() {
		if e.Action == action {
			keys = append(keys, e.Chord)
		}
	}
	return keys
}

// ResolveAndDispatch publishes the action of every bound chord the frame
// reports as pressed. Each chord is consumed at most once per frame.
func (t *Table) ResolveAndDispatch(frame InputFrame, sender Sender) int {
	sent := 0
	for _, e := range t.Entries() {
		if frame.ConsumeChord(e.Chord) {
			log.Debugf("Key %s resolved to %s", FormatChord(e.Chord), e.Action)
			sender.Send(e.Action)
			sent++
		}
	}
	return sent
}

// LoadUser adds user bindings on top of whatever is already loaded.
// Bad entries are skipped; their errors are returned for reporting.
func (t *Table) LoadUser(bindings []Binding) []error {
	var errs []error
	for _, b := range bindings {
		if err := t.insertText(b.Keys, b.Action); err != nil {
			log.LogWithError(err).Warn("Skipping key binding")
			errs = append(errs, err)
		}
	}
	return errs
}

func (t *Table) insertText(keys, action string) error {
	chord, err := ParseChord(strings.TrimSpace(keys))
	if err != nil {
		return err
	}
	a, err := types.ParseAction(action)
	if err != nil {
		return err
	}
	return t.Insert(chord, a)
}
