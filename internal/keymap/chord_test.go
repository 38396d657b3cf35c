package keymap

import (
	"testing"

	"codeshell/internal/errors"
	"codeshell/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	k, ok := ParseKey("Up")
	require.True(t, ok)
	assert.Equal(t, types.KeyUp, k)

	k, ok = ParseKey("Plus")
	require.True(t, ok)
	assert.Equal(t, types.KeyPlus, k)

	k, ok = ParseKey("0")
	require.True(t, ok)
	assert.Equal(t, types.Key0, k)

	_, ok = ParseKey("Ctrl")
	assert.False(t, ok)
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		input string
		want  types.KeyChord
	}{
		{"F11", types.Chord(0, types.KeyF11)},
		{"Alt+Enter", types.Chord(types.ModAlt, types.KeyEnter)},
		{"Ctrl+Shift+Q", types.Chord(types.ModCtrl|types.ModShift, types.KeyQ)},
		{"Shift+Ctrl+Q", types.Chord(types.ModCtrl|types.ModShift, types.KeyQ)},
		{"Ctrl+Alt+Shift+Z", types.Chord(types.ModCtrl|types.ModAlt|types.ModShift, types.KeyZ)},
		{"Cmd+S", types.Chord(cmdModifier, types.KeyS)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChord(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChordErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"Ctrl+",
		"Ctrl",
		"Hyper+A",
		"Ctrl+Alt+Shift+Cmd+A",
		"A+B",
		"ctrl+a",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseChord(input)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err))
			assert.True(t, errors.Is(err, errors.ErrInvalidChord))
			assert.False(t, errors.Is(err, errors.ErrUnknownAction))

			var pe *errors.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, input, pe.Input())
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, input := range []string{"F11", "Alt+Enter", "Shift+Alt+Enter", "Ctrl+Minus", "Ctrl+Plus", "Ctrl+0", "Cmd+Shift+P", "Alt+F12"} {
		chord, err := ParseChord(input)
		require.NoError(t, err)

		again, err := ParseChord(FormatChord(chord))
		require.NoError(t, err)
		assert.Equal(t, chord, again, input)
	}
	assert.Equal(t, "Alt+Shift+Enter", FormatChord(MustParseChord("Shift+Alt+Enter")))
	assert.Equal(t, "Ctrl+Shift+Cmd+P", FormatChord(MustParseChord("Cmd+Shift+Ctrl+P")))
}
