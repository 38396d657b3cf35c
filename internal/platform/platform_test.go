package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystemKeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	fsys := OSFileSystem{}
	require.NoError(t, fsys.WriteFile(path, []byte("#!/bin/sh\necho hi\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho hi\n", string(data))

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOSShellCommands(t *testing.T) {
	var calls [][]string
	record := func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	}

	for _, tc := range []struct {
		goos string
		want []string
	}{
		{"windows", []string{"explorer.exe", "/select,/p/a.txt"}},
		{"darwin", []string{"open", "-R", "/p/a.txt"}},
		{"linux", []string{"xdg-open", "/p"}},
	} {
		calls = nil
		s := &OSShell{goos: tc.goos, run: record}
		require.NoError(t, s.Reveal("/p/a.txt"))
		assert.Equal(t, [][]string{tc.want}, calls, tc.goos)
	}

	calls = nil
	s := &OSShell{goos: "linux", run: record}
	require.NoError(t, s.OpenURL("http://localhost:6060/debug/pprof/"))
	assert.Equal(t, [][]string{{"xdg-open", "http://localhost:6060/debug/pprof/"}}, calls)
}

func TestPickFolder(t *testing.T) {
	s := NewOSShell(nil)
	_, ok := s.PickFolder()
	assert.False(t, ok)

	s = NewOSShell(func() (string, bool) { return "/src", true })
	path, ok := s.PickFolder()
	assert.True(t, ok)
	assert.Equal(t, "/src", path)
}

func TestToasterExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	toaster := &Toaster{now: func() time.Time { return now }}

	toaster.Notify(LevelError, "cannot open", 5*time.Second)
	toaster.Notify(LevelWarning, "unsaved", time.Second)
	require.Len(t, toaster.Active(), 2)

	now = now.Add(2 * time.Second)
	active := toaster.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "cannot open", active[0].Message)
	assert.Equal(t, LevelError, active[0].Level)

	now = now.Add(10 * time.Second)
	assert.Empty(t, toaster.Active())
}

func TestMemoryClipboard(t *testing.T) {
	c := &MemoryClipboard{}
	require.NoError(t, c.SetText("/p/a.txt"))
	assert.Equal(t, "/p/a.txt", c.Text)
}
