package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"codeshell/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger writes leveled, structured lines through logrus.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

type options struct {
	out   io.Writer
	json  bool
	file  string
	level logrus.Level
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log lines to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithFile additionally appends every line to the file at path.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithLevel drops everything below level ("debug", "info", "warn", "error").
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// NewLogger builds a Logger. Without options it writes text lines to stdout.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stdout, level: logrus.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	base.SetLevel(o.level)
	if o.json {
		base.SetFormatter(&jsonFormatter{})
	} else {
		base.SetFormatter(&textFormatter{})
	}

	l := &Logger{}
	out := o.out
	if o.file != "" {
		f, err := os.OpenFile(o.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", o.file, err)
		} else {
			l.file = f
			out = io.MultiWriter(out, f)
		}
	}
	base.SetOutput(out)
	l.entry = logrus.NewEntry(base)
	return l
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithContext attaches ctx to every entry written by the returned logger.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	return &Logger{entry: l.entry.WithContext(ctx), file: l.file}
}

func (l *Logger) logAt(skip int, level logrus.Level, msg string) {
	entry := l.entry
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		entry = entry.WithField("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	entry.Log(level, msg)
}

func (l *Logger) Debug(args ...interface{}) {
	if isDebug.Load() {
		l.logAt(1, logrus.DebugLevel, fmt.Sprint(args...))
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		l.logAt(1, logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Info(args ...interface{}) {
	l.logAt(1, logrus.InfoLevel, fmt.Sprint(args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logAt(1, logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(args ...interface{}) {
	l.logAt(1, logrus.WarnLevel, fmt.Sprint(args...))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logAt(1, logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(args ...interface{}) {
	l.logAt(1, logrus.ErrorLevel, fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logAt(1, logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

// Configure replaces the package level logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Default returns the package level logger.
func Default() *Logger {
	return logger
}

// SetDebug turns debug output on or off for every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger annotated with err and the
// subject of the first typed error in its chain.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", nil))
	}
	fields := []Field{F("error", err.Error()), F("error_kind", errors.KindOf(err).String())}

	var ioErr *errors.IoError
	var cfgErr *errors.ConfigError
	var conflictErr *errors.ConflictError
	var parseErr *errors.ParseError
	switch {
	case errors.As(err, &conflictErr):
		fields = append(fields, F("chord", conflictErr.Chord()), F("existing_action", conflictErr.Existing()))
	case errors.As(err, &parseErr):
		fields = append(fields, F("input", parseErr.Input()))
	}
	if errors.As(err, &ioErr) {
		fields = append(fields, F("path", ioErr.Path()))
	}
	if errors.As(err, &cfgErr) {
		fields = append(fields, F("param", cfgErr.Param()))
	}
	return logger.With(fields...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	LogWithError(err).logAt(1, logrus.ErrorLevel, msg)
}

func Debug(args ...interface{}) {
	if isDebug.Load() {
		logger.logAt(1, logrus.DebugLevel, fmt.Sprint(args...))
	}
}

func Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		logger.logAt(1, logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func Info(args ...interface{}) {
	logger.logAt(1, logrus.InfoLevel, fmt.Sprint(args...))
}

func Infof(format string, args ...interface{}) {
	logger.logAt(1, logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func Warn(args ...interface{}) {
	logger.logAt(1, logrus.WarnLevel, fmt.Sprint(args...))
}

func Warnf(format string, args ...interface{}) {
	logger.logAt(1, logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func Error(args ...interface{}) {
	logger.logAt(1, logrus.ErrorLevel, fmt.Sprint(args...))
}

func Errorf(format string, args ...interface{}) {
	logger.logAt(1, logrus.ErrorLevel, fmt.Sprintf(format, args...))
}
