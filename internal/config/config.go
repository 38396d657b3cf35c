// Package config loads the YAML configuration of codeshell.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeshell/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// KeyBinding is a user binding, e.g. {keys: "Ctrl+K", action: "ToggleTerminal"}.
type KeyBinding struct {
	Keys   string `yaml:"keys"`
	Action string `yaml:"action"`
}

// Config is the application configuration.
type Config struct {
	Log struct {
		Debug bool   `yaml:"debug"` // Enable debug output
		JSON  bool   `yaml:"json"`  // One JSON object per line
		File  string `yaml:"file"`  // Log file; the terminal UI never logs to stdout
		Level string `yaml:"level"` // debug, info, warn or error
	} `yaml:"log"`
	Bus struct {
		Capacity int `yaml:"capacity"` // Pending actions before new ones are dropped
	} `yaml:"bus"`
	Explorer struct {
		DefaultDir string   `yaml:"default_dir"` // Folder opened at startup
		ShowHidden bool     `yaml:"show_hidden"`
		Exclude    []string `yaml:"exclude"` // Glob patterns matched against entry names
	} `yaml:"explorer"`
	View struct {
		Zoom           float32 `yaml:"zoom"` // Default zoom, restored by ZoomReset
		Theme          string  `yaml:"theme"`
		Transparency   float32 `yaml:"transparency"`
		ShowStatusBar  bool    `yaml:"show_status_bar"`
		ShowToolBar    bool    `yaml:"show_tool_bar"`
		ShowTerminal   bool    `yaml:"show_terminal"`
		VerticalTabBar bool    `yaml:"vertical_tab_bar"`
	} `yaml:"view"`
	Notifications struct {
		DurationSeconds int `yaml:"duration_seconds"`
	} `yaml:"notifications"`
	Debug struct {
		ProfilerURL string `yaml:"profiler_url"` // Opened by OpenPuffinViewer
	} `yaml:"debug"`
	KeyBindings []KeyBinding `yaml:"keybindings"`
}

// DefaultPath returns ~/.config/codeshell/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "codeshell", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from path on top of the defaults.
// A missing file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Bus.Capacity = 1000
	cfg.Explorer.ShowHidden = true
	cfg.Explorer.Exclude = []string{}
	cfg.View.Zoom = 1.0
	cfg.View.Theme = "dark"
	cfg.View.Transparency = 1.0
	cfg.View.ShowStatusBar = true
	cfg.View.ShowToolBar = true
	cfg.Notifications.DurationSeconds = 5
	cfg.KeyBindings = []KeyBinding{}
	return cfg
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// SaveConfig writes cfg to path, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func invalid(param, format string, args ...interface{}) error {
	return errors.NewConfigError(fmt.Sprintf(format, args...), param, errors.InvalidConfig, nil)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return invalid("", "nil config")
	}
	if c.Bus.Capacity < 1 {
		return invalid("bus.capacity", "capacity must be >= 1")
	}
	if c.View.Zoom < MinZoom || c.View.Zoom > MaxZoom {
		return invalid("view.zoom", "zoom must be between %.1f and %.1f", MinZoom, MaxZoom)
	}
	if c.View.Transparency < 0 || c.View.Transparency > 1 {
		return invalid("view.transparency", "transparency must be between 0 and 1")
	}
	if _, ok := themes[c.View.Theme]; !ok {
		return invalid("view.theme", "unknown theme %q", c.View.Theme)
	}
	if c.Notifications.DurationSeconds < 1 {
		return invalid("notifications.duration_seconds", "duration must be >= 1 second")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level", "unknown level %q", c.Log.Level)
	}
	for i, pattern := range c.Explorer.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError(fmt.Sprintf("exclude %d: bad pattern %q", i, pattern), "explorer.exclude", errors.InvalidConfig, err)
		}
	}
	for i, kb := range c.KeyBindings {
		if kb.Keys == "" || kb.Action == "" {
			return invalid("keybindings", "binding %d: keys and action are required", i)
		}
	}
	if c.Explorer.DefaultDir != "" {
		info, err := os.Stat(c.Explorer.DefaultDir)
		if err != nil || !info.IsDir() {
			return invalid("explorer.default_dir", "%s is not a directory", c.Explorer.DefaultDir)
		}
	}
	return nil
}

// Zoom limits shared with the view state.
const (
	MinZoom float32 = 0.2
	MaxZoom float32 = 4.0
)

// NotifyDuration is how long notifications stay visible.
func (c *Config) NotifyDuration() time.Duration {
	return time.Duration(c.Notifications.DurationSeconds) * time.Second
}

// DarkMode reports whether the configured theme is dark.
func (c *Config) DarkMode() bool {
	return GetTheme(c.View.Theme)["mode"] == "dark"
}

var themes = map[string]map[string]string{
	"dark": {
		"mode":     "dark",
		"primary":  "105",
		"accent":   "212",
		"muted":    "241",
		"text":     "252",
		"warning":  "214",
		"error":    "160",
		"border":   "238",
		"selected": "57",
	},
	"light": {
		"mode":     "light",
		"primary":  "25",
		"accent":   "162",
		"muted":    "246",
		"text":     "235",
		"warning":  "172",
		"error":    "160",
		"border":   "250",
		"selected": "153",
	},
	"monochrome": {
		"mode":     "dark",
		"primary":  "252",
		"accent":   "255",
		"muted":    "243",
		"text":     "250",
		"warning":  "255",
		"error":    "255",
		"border":   "240",
		"selected": "238",
	},
}

// GetTheme returns the colors of a theme, falling back to "dark".
func GetTheme(name string) map[string]string {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes["dark"]
}

// ListThemes returns the available theme names.
func ListThemes() []string {
	return []string{"dark", "light", "monochrome"}
}
