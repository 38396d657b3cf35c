package log

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeshell/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapLogger points the package logger at buf for the duration of a test.
func swapLogger(t *testing.T, opts ...Option) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := logger
	Configure(append([]Option{WithOutput(&buf)}, opts...)...)
	t.Cleanup(func() {
		logger.Close()
		logger = saved
	})
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	return entry
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	tests := []struct {
		log  func()
		want string
	}{
		{func() { l.Info("folder opened") }, "INFO: folder opened"},
		{func() { l.Warn("action bus is full") }, "WARN: action bus is full"},
		{func() { l.Error("save failed") }, "ERROR: save failed"},
		{func() { l.Infof("%d documents open", 3) }, "INFO: 3 documents open"},
		{func() { l.Errorf("cannot reveal %s", "/tmp/x") }, "ERROR: cannot reveal /tmp/x"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			buf.Reset()
			tt.log()
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestDebugIsGated(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("listing /src")
	l.Debugf("key %s", "Alt+1")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	l.Debug("listing /src")
	l.Debugf("key %s", "Alt+1")
	assert.Contains(t, buf.String(), "DEBUG: listing /src")
	assert.Contains(t, buf.String(), "DEBUG: key Alt+1")
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithLevel("warn"))

	l.Info("config reloaded")
	assert.Empty(t, buf.String())
	l.Warn("binding skipped")
	assert.Contains(t, buf.String(), "binding skipped")

	buf.Reset()
	l = NewLogger(WithOutput(&buf), WithLevel("verbose"))
	l.Info("unknown levels keep everything")
	assert.NotEmpty(t, buf.String())
}

func TestFieldsAccumulate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("path", "/src/main.go")).With(F("size", 42)).Info("document opened")
	out := buf.String()
	assert.Contains(t, out, "document opened")
	assert.Contains(t, out, "path=/src/main.go")
	assert.Contains(t, out, "size=42")
	assert.Contains(t, out, "caller=logger_test.go:")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("dropped", 7), F("action", "ZoomIn")).Warn("action bus is full, dropped action")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "action bus is full, dropped action", entry["message"])
	assert.Equal(t, "ZoomIn", entry["action"])
	assert.Equal(t, float64(7), entry["dropped"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry["caller"], "logger_test.go:")
}

func TestLogWithError(t *testing.T) {
	readErr := errors.NewIoError("cannot read file", "/src/main.go", errors.FileReadFailed, nil)

	tests := []struct {
		name string
		log  func()
		want []string
	}{
		{
			name: "io error",
			log:  func() { LogWithError(readErr).Error("open failed") },
			want: []string{"open failed", "path=/src/main.go", "error_kind=file_read_failed"},
		},
		{
			name: "conflict",
			log:  func() { LogWithError(errors.NewConflictError("Alt+1", "ToggleExplorer")).Warn("binding skipped") },
			want: []string{"chord=Alt+1", "existing_action=ToggleExplorer"},
		},
		{
			name: "parse error",
			log: func() {
				LogWithError(errors.NewParseError("unknown key", "Ctrl+Nope", errors.ChordParseFailed, nil)).Warn("binding skipped")
			},
			want: []string{"input=Ctrl+Nope", "error_kind=chord_parse_failed"},
		},
		{
			name: "wrapped config error",
			log: func() {
				LogError(errors.NewConfigError("config error", "bus.capacity", errors.InvalidConfig, readErr), "cannot load config")
			},
			want: []string{"cannot load config", "param=bus.capacity", "path=/src/main.go"},
		},
		{
			name: "nil",
			log:  func() { LogWithError(nil).Error("nothing to report") },
			want: []string{"error=<nil>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := swapLogger(t)
			tt.log()
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codeshell.log")
	buf := swapLogger(t, WithFile(path))

	Info("shell started")
	assert.Contains(t, buf.String(), "shell started")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shell started")
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(WithOutput(&buf)).WithContext(context.Background()).Info("frame dispatched")
	assert.Contains(t, buf.String(), "frame dispatched")
}

func TestConfigureJSON(t *testing.T) {
	buf := swapLogger(t, WithJSON())
	LogWithFields(F("config", "/home/u/.config/codeshell/config.yaml")).Info("Configuration reloaded")

	entry := decodeLine(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Configuration reloaded", entry["message"])
	assert.Equal(t, "/home/u/.config/codeshell/config.yaml", entry["config"])
}
