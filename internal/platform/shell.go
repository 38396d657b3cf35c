package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"codeshell/internal/log"
)

// Shell talks to the desktop: the file manager, the browser and the
// folder picker.
type Shell interface {
	Reveal(path string) error
	OpenURL(url string) error
	PickFolder() (string, bool)
}

// FolderPicker asks the user for a directory. ok is false when cancelled.
type FolderPicker func() (path string, ok bool)

// OSShell spawns the platform's file manager and browser.
type OSShell struct {
	Picker FolderPicker
	goos   string
	run    func(name string, args ...string) error
}

// NewOSShell returns a shell using picker for PickFolder.
func NewOSShell(picker FolderPicker) *OSShell {
	return &OSShell{Picker: picker, goos: runtime.GOOS, run: startDetached}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Reveal shows path selected in the file manager. Linux file managers
// have no common "select" flag, so the containing directory is opened.
func (s *OSShell) Reveal(path string) error {
	log.LogWithFields(log.F("path", path)).Debug("Revealing in file manager")
	switch s.goos {
	case "windows":
		return s.run("explorer.exe", "/select,"+path)
	case "darwin":
		return s.run("open", "-R", path)
	default:
		return s.run("xdg-open", filepath.Dir(path))
	}
}

// OpenURL opens url in the default browser.
func (s *OSShell) OpenURL(url string) error {
	switch s.goos {
	case "windows":
		return s.run("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return s.run("open", url)
	default:
		return s.run("xdg-open", url)
	}
}

// PickFolder asks the configured picker.
func (s *OSShell) PickFolder() (string, bool) {
	if s.Picker == nil {
		return "", false
	}
	return s.Picker()
}
