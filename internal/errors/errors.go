// Package errors provides the typed errors used across codeshell.
// Every error carries an ErrorKind so callers can branch on the failure
// without string matching, and every typed error wraps its cause.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Sentinels matched with Is by kind: any ParseError or ConfigError of the
// same kind is reported as the sentinel.
var (
	ErrInvalidChord  = NewParseError("invalid key chord", "", ChordParseFailed, nil)
	ErrUnknownAction = NewParseError("unknown action", "", UnknownAction, nil)
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Parse error kinds
	ChordParseFailed
	UnknownAction
	// Binding error kinds
	BindingConflict
	// IO error kinds
	FileReadFailed
	FileWriteFailed
	DecodeFailed
	EncodeFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

var kindNames = map[ErrorKind]string{
	Unknown:          "unknown",
	ChordParseFailed: "chord_parse_failed",
	UnknownAction:    "unknown_action",
	BindingConflict:  "binding_conflict",
	FileReadFailed:   "file_read_failed",
	FileWriteFailed:  "file_write_failed",
	DecodeFailed:     "decode_failed",
	EncodeFailed:     "encode_failed",
	InvalidConfig:    "invalid_config",
	ConfigNotFound:   "config_not_found",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// withSubject renders "msg: subject[: cause]" for the typed errors below.
func (e *ApplicationError) withSubject(subject string) string {
	if subject == "" {
		return e.Error()
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.msg, subject, e.err)
	}
	return fmt.Sprintf("%s: %s", e.msg, subject)
}

// ParseError is returned when a chord or action name cannot be parsed.
type ParseError struct {
	ApplicationError
	input string
}

// NewParseError creates a new parse error
func NewParseError(msg string, input string, kind ErrorKind, err error) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		input:            input,
	}
}

// Error returns the parse error message
func (e *ParseError) Error() string {
	if e.input == "" {
		return e.ApplicationError.Error()
	}
	return e.withSubject(fmt.Sprintf("%q", e.input))
}

// Input returns the text that failed to parse
func (e *ParseError) Input() string {
	return e.input
}

// Is matches a sentinel ParseError (one without input) of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.input == "" && t.kind == e.kind
}

// ConflictError is returned when a chord is already bound.
type ConflictError struct {
	ApplicationError
	chord    string
	existing string
}

// NewConflictError creates a binding conflict naming the action that already owns chord.
func NewConflictError(chord, existing string) *ConflictError {
	return &ConflictError{
		ApplicationError: ApplicationError{msg: "key binding conflict", kind: BindingConflict},
		chord:            chord,
		existing:         existing,
	}
}

// Error returns the conflict message
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s is already bound to %s", e.msg, e.chord, e.existing)
}

// Chord returns the formatted chord that conflicted
func (e *ConflictError) Chord() string {
	return e.chord
}

// Existing returns the name of the action already bound to the chord
func (e *ConflictError) Existing() string {
	return e.existing
}

// IoError represents a failed read, write, decode or encode of a file
type IoError struct {
	ApplicationError
	path string
}

// NewIoError creates a new io error
func NewIoError(msg string, path string, kind ErrorKind, err error) *IoError {
	return &IoError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		path:             path,
	}
}

// Error returns the io error message
func (e *IoError) Error() string {
	return e.withSubject(e.path)
}

// Path returns the file path associated with the error
func (e *IoError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		param:            param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	return e.withSubject(e.param)
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// Is matches a sentinel ConfigError (one without param) of the same kind.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.param == "" && t.kind == e.kind
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context. The wrapper keeps
// the kind of err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: KindOf(err),
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: KindOf(err),
	}
}

// IsParseError checks if the error is a chord or action parse error
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsConflict checks if the error is a key binding conflict
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsIoError checks if the error is a file io error
func IsIoError(err error) bool {
	var ioErr *IoError
	return errors.As(err, &ioErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// KindOf returns the kind of the first typed error in err's chain.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}
