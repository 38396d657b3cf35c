package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"codeshell/internal/errors"
	"codeshell/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration file whenever it changes on disk.
type Watcher struct {
	path string

	// Channel delivering successfully reloaded configurations
	updates chan *Config

	// Channel to signal stop
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// NewWatcher creates a watcher for the config file at path. The parent
// directory is watched because editors often replace files on save.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	path = filepath.Clean(path)
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{
		path:      path,
		updates:   make(chan *Config, 1),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Updates delivers each configuration that loaded and validated.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Start begins watching.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
	log.LogWithFields(log.F("path", w.path)).Debug("Config watcher started")
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfigFile(w.path)
	if err != nil {
		log.LogWithError(errors.Wrap(err, "config reload")).Warn("Ignoring invalid config change")
		return
	}

	// Only the newest configuration matters; replace an unread one.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	default:
		log.LogWithFields(log.F("path", w.path)).Warn("Config update channel is full, dropped reload")
	}
}

// Stop halts watching.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
