// Package messages holds the bubbletea messages of the host.
package messages

import "codeshell/internal/config"

// FrameMsg asks the host to run one more dispatch frame.
type FrameMsg struct{}

// TickMsg is the periodic frame used to expire notifications.
type TickMsg struct{}

// ConfigUpdateMsg carries a configuration reloaded from disk.
type ConfigUpdateMsg struct {
	Config *config.Config
}
