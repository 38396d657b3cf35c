package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"codeshell/internal/config"
	"codeshell/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestKeysCommand(t *testing.T) {
	path := writeConfig(t, `
keybindings:
  - keys: "Ctrl+K"
    action: "ToggleTerminal"
  - keys: "Alt+1"
    action: "ZoomIn"
  - keys: "Hyper+K"
    action: "ExitApp"
  - keys: "Ctrl+L"
    action: "Nope"
`)
	out, errOut, err := execute(t, "keys", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CHORD")
	assert.Regexp(t, `Alt\+1\s+ToggleExplorer\s+-`, out)
	assert.Regexp(t, `Ctrl\+K\s+ToggleTerminal\s+-`, out)
	assert.Contains(t, errOut, "skipped (conflict)")
	assert.Contains(t, errOut, "skipped (invalid chord)")
	assert.Contains(t, errOut, "skipped (unknown action)")

	out, errOut, err = execute(t, "keys", "--defaults", "--config", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Ctrl+K")
	assert.Empty(t, errOut)
}

func TestKeysShowTerminalAlternatives(t *testing.T) {
	out, _, err := execute(t, "keys", "--defaults", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "IN A TERMINAL")
	assert.Regexp(t, `Ctrl\+Shift\+Q\s+ExitApp\s+F10 › File › ExitApp`, out)
	assert.Regexp(t, `Ctrl\+Shift\+O\s+OpenFolder\s+F10 › File › OpenFolder`, out)
	assert.Regexp(t, `Ctrl\+Shift\+S\s+OpenSettingWindow\s+click ⚙ on the tool rail`, out)
	assert.Regexp(t, `F12\s+OpenDebugWindow\s+-`, out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	out, _, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.New().Bus.Capacity, loaded.Bus.Capacity)

	_, _, err = execute(t, "config", "init", "--config", path)
	assert.Error(t, err)
	_, _, err = execute(t, "config", "init", "--force", "--config", path)
	assert.NoError(t, err)
}

func TestConfigPathAndThemes(t *testing.T) {
	path := writeConfig(t, "view:\n  theme: light\n")
	out, _, err := execute(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, _, err = execute(t, "config", "themes", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "* light (light)")
	assert.Contains(t, out, "  dark (dark)")
}

func TestInvalidConfigFails(t *testing.T) {
	path := writeConfig(t, "bus:\n  capacity: -3\n")
	_, _, err := execute(t, "keys", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "config init --force")

	_, _, err = execute(t, "keys", "--config", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot load config")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
