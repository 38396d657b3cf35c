package platform

import "github.com/atotto/clipboard"

// Clipboard receives text copied from the explorer.
type Clipboard interface {
	SetText(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) SetText(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the last copied text. Used when no system
// clipboard is available and in tests.
type MemoryClipboard struct {
	Text string
}

func (m *MemoryClipboard) SetText(text string) error {
	m.Text = text
	return nil
}

// DetectClipboard returns the system clipboard when one is usable.
func DetectClipboard() Clipboard {
	if clipboard.Unsupported {
		return &MemoryClipboard{}
	}
	return SystemClipboard{}
}
