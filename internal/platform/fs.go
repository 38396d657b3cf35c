// Package platform holds the collaborators the shell needs from the host
// operating system: file access, the clipboard, a file manager and a place
// to show notifications.
package platform

import (
	"io/fs"
	"os"
)

// FileSystem is the file access the tree and the document manager use.
type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSFileSystem reads and writes the local disk.
type OSFileSystem struct{}

func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile keeps the mode of an existing file.
func (OSFileSystem) WriteFile(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}
