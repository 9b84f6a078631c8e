package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{" info ", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"ERROR", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func newTestLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	return NewLogger(LoggerConfig{
		Level:  level,
		Output: buf,
		Format: LogFormatLogfmt,
	})
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level were written: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("expected warn line with key/value, got %q", out)
	}

	buf.Reset()
	logger.SetLevel(LogLevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("SetLevel() did not lower the threshold")
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LogLevelInfo)
	child := base.WithComponent("widget").WithFields(map[string]any{"b": 2, "a": 1})

	child.Info("selected")
	out := buf.String()
	for _, want := range []string{"component=widget", "a=1", "b=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	if len(base.Fields()) != 0 {
		t.Error("WithFields() mutated the parent logger")
	}
	if got := child.Fields()["component"]; got != "widget" {
		t.Errorf("Fields()[component] = %v", got)
	}
}

func TestLogger_DisableEnable(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelInfo)

	logger.Disable()
	logger.Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}

	logger.Enable()
	logger.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Error("Enable() did not restore output")
	}
}

func TestLogger_NilAndNop(t *testing.T) {
	var nilLogger *Logger
	nilLogger.Info("ignored")
	nilLogger.SetLevel(LogLevelDebug)
	if nilLogger.WithField("k", "v") != nil {
		t.Error("WithField() on nil logger should return nil")
	}

	nop := NopLogger()
	nop.Error("ignored")
	nop.WithComponent("x").Error("ignored")
}
