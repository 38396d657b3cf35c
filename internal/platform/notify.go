package platform

import (
	"sync"
	"time"

	"codeshell/internal/log"
)

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// DefaultDuration is how long a notification stays up unless configured.
const DefaultDuration = 5 * time.Second

// Notifier shows transient messages to the user.
type Notifier interface {
	Notify(level Level, msg string, d time.Duration)
}

// Toast is one visible notification.
type Toast struct {
	Level   Level
	Message string
	Expires time.Time
}

// Toaster keeps notifications until they expire. Every notification is
// also logged.
type Toaster struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

// NewToaster returns an empty Toaster.
func NewToaster() *Toaster {
	return &Toaster{now: time.Now}
}

func (t *Toaster) Notify(level Level, msg string, d time.Duration) {
	entry := log.LogWithFields(log.F("notification", level.String()))
	switch level {
	case LevelError:
		entry.Error(msg)
	case LevelWarning:
		entry.Warn(msg)
	default:
		entry.Info(msg)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.toasts = append(t.toasts, Toast{Level: level, Message: msg, Expires: t.now().Add(d)})
}

// Active drops expired toasts and returns the rest, oldest first.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	kept := t.toasts[:0]
	for _, toast := range t.toasts {
		if now.Before(toast.Expires) {
			kept = append(kept, toast)
		}
	}
	t.toasts = kept
	return append([]Toast(nil), kept...)
}
