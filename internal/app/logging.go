// Package app provides application-wide services shared by the editor
// packages and the command line.
package app

import (
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	charmLog "github.com/charmbracelet/log"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func (l LogLevel) charm() charmLog.Level {
	switch l {
	case LogLevelDebug:
		return charmLog.DebugLevel
	case LogLevelWarn:
		return charmLog.WarnLevel
	case LogLevelError:
		return charmLog.ErrorLevel
	default:
		return charmLog.InfoLevel
	}
}

// LogFormat selects the line format.
type LogFormat string

const (
	// LogFormatText is the styled human-readable format.
	LogFormatText LogFormat = "text"
	// LogFormatLogfmt is the key=value format.
	LogFormatLogfmt LogFormat = "logfmt"
	// LogFormatJSON emits one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

func (f LogFormat) formatter() charmLog.Formatter {
	switch f {
	case LogFormatLogfmt:
		return charmLog.LogfmtFormatter
	case LogFormatJSON:
		return charmLog.JSONFormatter
	default:
		return charmLog.TextFormatter
	}
}

// Logger provides structured key/value logging. A nil *Logger discards
// everything.
type Logger struct {
	mu       *sync.Mutex
	base     *charmLog.Logger
	fields   map[string]any
	disabled bool
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
	// Format selects the line format. Defaults to text.
	Format LogFormat
	// Timestamps adds a timestamp to each line.
	Timestamps bool
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      LogLevelInfo,
		Output:     os.Stderr,
		Prefix:     "blockedit",
		Format:     LogFormatText,
		Timestamps: true,
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	base := charmLog.NewWithOptions(cfg.Output, charmLog.Options{
		Level:           cfg.Level.charm(),
		Prefix:          cfg.Prefix,
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.RFC3339,
		Formatter:       cfg.Format.formatter(),
	})
	return &Logger{
		mu:     &sync.Mutex{},
		base:   base,
		fields: make(map[string]any),
	}
}

// NopLogger returns a logger that discards all output.
func NopLogger() *Logger {
	l := NewLogger(LoggerConfig{Output: io.Discard})
	l.disabled = true
	return l
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	newFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	keyvals := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		newFields[k] = fields[k]
		keyvals = append(keyvals, k, fields[k])
	}

	return &Logger{
		mu:       l.mu,
		base:     l.base.With(keyvals...),
		fields:   newFields,
		disabled: l.disabled,
	}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Fields returns a copy of the fields attached to the logger.
func (l *Logger) Fields() map[string]any {
	if l == nil {
		return nil
	}
	out := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		out[k] = v
	}
	return out
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base.SetLevel(level.charm())
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base.SetOutput(w)
}

// Disable disables all logging.
func (l *Logger) Disable() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = true
}

// Enable enables logging.
func (l *Logger) Enable() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = false
}

// Debug logs a debug message with key/value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log(LogLevelDebug, msg, keyvals...)
}

// Info logs an info message with key/value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log(LogLevelInfo, msg, keyvals...)
}

// Warn logs a warning message with key/value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log(LogLevelWarn, msg, keyvals...)
}

// Error logs an error message with key/value pairs.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.log(LogLevelError, msg, keyvals...)
}

func (l *Logger) log(level LogLevel, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled {
		return
	}
	switch level {
	case LogLevelDebug:
		l.base.Debug(msg, keyvals...)
	case LogLevelWarn:
		l.base.Warn(msg, keyvals...)
	case LogLevelError:
		l.base.Error(msg, keyvals...)
	default:
		l.base.Info(msg, keyvals...)
	}
}
