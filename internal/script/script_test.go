package script

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/blockedit/internal/config"
)

func newTestSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Keystrokes.Platform = "other"
	s := NewSession(cfg, opts...)
	t.Cleanup(s.Close)
	return s
}

func run(t *testing.T, s *Session, code string) {
	t.Helper()
	if err := s.Run(context.Background(), code); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, f := range s.Failures() {
		t.Errorf("expectation failed: %s", f)
	}
}

func TestRunFile(t *testing.T) {
	s := newTestSession(t)
	if err := s.RunFile(context.Background(), filepath.Join("testdata", "widget.lua")); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	for _, f := range s.Failures() {
		t.Errorf("expectation failed: %s", f)
	}
	if s.Editor() == nil {
		t.Error("Editor() = nil after the script used it")
	}
}

func TestDeleteAndView(t *testing.T) {
	s := newTestSession(t)
	run(t, s, `
		editor.define{name = "widget", view = "div", object = true, block = true, widget = true}
		editor.set_data("<paragraph>[]foo</paragraph><widget></widget>")
		editor.expect_eq(editor.click({1}), true)
		editor.expect_eq(editor.get_view(),
			'<p>foo</p>[<div class="ck-widget ck-widget_selected" contenteditable="false"></div>]')
		editor.key("Delete")
		editor.expect_eq(editor.get_data(), "<paragraph>foo</paragraph><paragraph>[]</paragraph>")
	`)
}

func TestReadOnly(t *testing.T) {
	s := newTestSession(t)
	run(t, s, `
		editor.set_data("<paragraph>foo[]</paragraph>")
		editor.expect_eq(editor.read_only(), false)
		editor.expect_eq(editor.read_only(true), true)
		editor.expect_eq(editor.key("x"), false)
		editor.expect_eq(editor.get_data(), "<paragraph>foo[]</paragraph>")
	`)
	if !s.Editor().IsReadOnly() {
		t.Error("IsReadOnly() = false after read_only(true)")
	}
}

func TestDragResizes(t *testing.T) {
	s := newTestSession(t)
	run(t, s, `
		editor.define{name = "image", view = "figure", object = true, block = true, widget = true, resizable = true}
		editor.set_data('<image height="100"></image>')
		editor.expect_eq(editor.drag({0, 1}, 100, 100, 80, 85), true)
		editor.expect_eq(editor.get_data(), '[<image height="115"></image>]')
	`)
}

func TestExpectEqRecordsFailures(t *testing.T) {
	s := newTestSession(t)
	err := s.Run(context.Background(), `
		editor.expect_eq("a", "a")
		editor.expect_eq("a", "b", "letters")
		editor.expect_eq(1, "1")
		editor.expect_eq(true, false)
	`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	failures := s.Failures()
	if len(failures) != 3 {
		t.Fatalf("Failures() = %q, want 3 entries", failures)
	}
	if !strings.Contains(failures[0], "letters: got a, want b") {
		t.Errorf("failure = %q, want note and values", failures[0])
	}
	if !strings.Contains(failures[2], "got true, want false") {
		t.Errorf("failure = %q, want boolean values", failures[2])
	}
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"define after start", `editor.set_data("<paragraph></paragraph>") editor.define{name = "x"}`, ErrEditorStarted.Error()},
		{"define without name", `editor.define{view = "div"}`, "name is required"},
		{"missing node", `editor.set_data("<paragraph></paragraph>") editor.click({7})`, ErrNoNode.Error()},
		{"bad path", `editor.click({"a"})`, "path must hold numbers"},
		{"bad keystroke", `editor.key("Hyper+Q")`, "Hyper"},
		{"bad markup", `editor.set_data("<paragraph></div>")`, "invalid markup"},
		{"syntax", `editor.key(`, "<string>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			err := s.Run(context.Background(), tt.code)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Run() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestSandbox(t *testing.T) {
	s := newTestSession(t)
	run(t, s, `
		editor.expect_eq(type(os), "nil")
		editor.expect_eq(type(io), "nil")
		editor.expect_eq(type(dofile), "nil")
		editor.expect_eq(type(require), "nil")
		editor.expect_eq(string.upper("ok"), "OK")
	`)
}

func TestTimeout(t *testing.T) {
	s := newTestSession(t, WithStateOptions(WithTimeout(50*time.Millisecond)))
	if err := s.Run(context.Background(), `while true do end`); err == nil {
		t.Fatal("Run() of an endless loop returned nil")
	}
}

func TestClosedState(t *testing.T) {
	s := newTestSession(t)
	s.Close()
	if err := s.Run(context.Background(), `editor.log("hi")`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Run() error = %v, want ErrStateClosed", err)
	}
}
