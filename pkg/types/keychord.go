package types

import "fmt"

// Key is a physical key that can end a chord.
type Key int

const (
	KeyNone Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyMinus
	KeyPlus
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20

	keyCount
)

var keyNames = func() [keyCount]string {
	var names [keyCount]string
	fixed := map[Key]string{
		KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up",
		KeyEscape: "Escape", KeyTab: "Tab", KeyBackspace: "Backspace", KeyEnter: "Enter",
		KeySpace: "Space", KeyInsert: "Insert", KeyDelete: "Delete", KeyHome: "Home",
		KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
		KeyMinus: "Minus", KeyPlus: "Plus",
	}
	for k, n := range fixed {
		names[k] = n
	}
	for i := 0; i <= 9; i++ {
		names[Key0+Key(i)] = fmt.Sprint(i)
	}
	for i := 0; i < 26; i++ {
		names[KeyA+Key(i)] = string(rune('A' + i))
	}
	for i := 1; i <= 20; i++ {
		names[KeyF1+Key(i-1)] = fmt.Sprintf("F%d", i)
	}
	return names
}()

// Name returns the key's display name, e.g. "Up", "Plus", "0", "F12".
func (k Key) Name() string {
	if k <= KeyNone || k >= keyCount {
		return ""
	}
	return keyNames[k]
}

func (k Key) String() string { return k.Name() }

// KeyByName is the inverse of Name.
func KeyByName(name string) (Key, bool) {
	for i := KeyNone + 1; i < keyCount; i++ {
		if keyNames[i] == name {
			return i, true
		}
	}
	return KeyNone, false
}

// Modifiers is a set of held modifier keys. Command is the platform's
// primary modifier (Ctrl everywhere but macOS); MacCmd is the macOS ⌘ key.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModShift
	ModMacCmd
	ModCommand
)

// Has reports whether every modifier in m is held.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// KeyChord is a set of modifiers plus exactly one key.
type KeyChord struct {
	Modifiers Modifiers
	Key       Key
}

// Chord builds a KeyChord.
func Chord(mods Modifiers, key Key) KeyChord {
	return KeyChord{Modifiers: mods, Key: key}
}
