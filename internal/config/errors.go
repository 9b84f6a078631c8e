package config

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrFileNotFound      = errors.New("config file not found")
)

// ParseError reports a config file that could not be decoded. Line and
// Column are zero when the decoder gives no position.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error formats as "path:line:column: message", omitting unknown parts.
func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			loc += ":" + strconv.Itoa(e.Column)
		}
	}
	return "config: parse " + loc + ": " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError names a setting whose value was rejected. It matches
// ErrInvalidConfig under errors.Is.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s (got %v)", e.Path, e.Message, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfig }
