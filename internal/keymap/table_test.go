package keymap

import (
	"testing"

	"codeshell/internal/errors"
	"codeshell/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrame struct {
	pressed map[types.KeyChord]bool
}

func newFrame(chords ...string) *fakeFrame {
	f := &fakeFrame{pressed: map[types.KeyChord]bool{}}
	for _, c := range chords {
		f.pressed[MustParseChord(c)] = true
	}
	return f
}

func (f *fakeFrame) ConsumeChord(c types.KeyChord) bool {
	if f.pressed[c] {
		delete(f.pressed, c)
		return true
	}
	return false
}

type recorder struct {
	sent []types.Action
}

func (r *recorder) Send(a types.Action) bool {
	r.sent = append(r.sent, a)
	return true
}

func TestInsertRejectsConflict(t *testing.T) {
	table := NewTable()
	chord := MustParseChord("Ctrl+K")
	require.NoError(t, table.Insert(chord, types.Do(types.ToggleTerminal)))

	err := table.Insert(chord, types.Do(types.ZoomIn))
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	var ce *errors.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "ToggleTerminal", ce.Existing())
	assert.Equal(t, "Ctrl+K", ce.Chord())

	// The original binding survives.
	got, ok := table.Lookup(chord)
	require.True(t, ok)
	assert.Equal(t, types.Do(types.ToggleTerminal), got)
}

func TestLoadDefaults(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.LoadDefaults())
	assert.Equal(t, 16, table.Len())

	a, ok := table.Lookup(MustParseChord("Alt+1"))
	require.True(t, ok)
	assert.Equal(t, types.Do(types.ToggleExplorer), a)

	// Loading twice conflicts on the first entry.
	err := table.LoadDefaults()
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))
}

func TestKeysFor(t *testing.T) {
	table := NewTable().MustLoadDefaults()

	keys := table.KeysFor(types.Do(types.ToggleFullScreen))
	require.Len(t, keys, 2)
	assert.Equal(t, "Alt+Enter", FormatChord(keys[0]))
	assert.Equal(t, "F11", FormatChord(keys[1]))

	assert.Equal(t, []types.KeyChord{MustParseChord("Ctrl+Shift+Q")}, table.KeysFor(types.Do(types.ExitApp)))
	assert.Empty(t, table.KeysFor(types.Do(types.ToggleVerticalTabBar)))
}

func TestResolveAndDispatch(t *testing.T) {
	table := NewTable().MustLoadDefaults()
	rec := &recorder{}

	frame := newFrame("Alt+5", "Ctrl+0", "Ctrl+J")
	n := table.ResolveAndDispatch(frame, rec)
	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []types.Action{types.Do(types.ToggleToolBar), types.Do(types.ZoomReset)}, rec.sent)

	// Unbound chord stays unconsumed for the host.
	assert.True(t, frame.pressed[MustParseChord("Ctrl+J")])

	// Consumed chords do not fire again within the same frame.
	rec.sent = nil
	table.ResolveAndDispatch(frame, rec)
	assert.Empty(t, rec.sent)
}

func TestLoadUser(t *testing.T) {
	table := NewTable().MustLoadDefaults()
	errs := table.LoadUser([]Binding{
		{Keys: "Ctrl+K", Action: "ToggleTerminal"},
		{Keys: "Ctrl+Shift+Z", Action: "ZoomSet(2)"},
		{Keys: "Alt+1", Action: "ZoomIn"},
		{Keys: "Ctrl+Nope", Action: "ZoomIn"},
		{Keys: "Ctrl+L", Action: "Teleport"},
	})
	require.Len(t, errs, 3)
	assert.True(t, errors.IsConflict(errs[0]))
	assert.True(t, errors.IsParseError(errs[1]))
	assert.True(t, errors.IsParseError(errs[2]))

	a, ok := table.Lookup(MustParseChord("Ctrl+Shift+Z"))
	require.True(t, ok)
	assert.Equal(t, types.SetZoom(2), a)

	a, ok = table.Lookup(MustParseChord("Alt+1"))
	require.True(t, ok)
	assert.Equal(t, types.Do(types.ToggleExplorer), a)
	assert.Equal(t, 18, table.Len())
}
