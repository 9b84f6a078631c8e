package script

import (
	"context"
	"fmt"

	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/editor"
	"github.com/dshills/blockedit/internal/scenario"
)

// ModuleName is the global table scripts use.
const ModuleName = "editor"

// Session binds one editor to one Lua state.
type Session struct {
	state  *State
	cfg    config.Config
	logger *app.Logger
	opts   []editor.Option

	specs    []scenario.ElementSpec
	editor   *editor.Editor
	failures []string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *app.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithEditorOptions passes options to the editor the session builds.
func WithEditorOptions(opts ...editor.Option) SessionOption {
	return func(s *Session) {
		s.opts = append(s.opts, opts...)
	}
}

// WithStateOptions configures the Lua state.
func WithStateOptions(opts ...StateOption) SessionOption {
	return func(s *Session) {
		s.state = NewState(opts...)
	}
}

// NewSession creates a session. The editor is built lazily.
func NewSession(cfg config.Config, opts ...SessionOption) *Session {
	s := &Session{cfg: cfg, logger: app.NopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	if s.state == nil {
		s.state = NewState()
	}
	s.logger = s.logger.WithComponent("script")
	s.state.RegisterModule(ModuleName, s.functions())
	return s
}

// Run executes code.
func (s *Session) Run(ctx context.Context, code string) error {
	return s.state.DoString(ctx, code)
}

// RunFile executes the script at path.
func (s *Session) RunFile(ctx context.Context, path string) error {
	if err := s.state.DoFile(ctx, path); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

// Failures returns the failed expectations in order.
func (s *Session) Failures() []string {
	return append([]string(nil), s.failures...)
}

// Editor returns the session editor, or nil before it is started.
func (s *Session) Editor() *editor.Editor {
	return s.editor
}

// Close destroys the editor and the Lua state.
func (s *Session) Close() {
	if s.editor != nil {
		s.editor.Destroy()
	}
	s.state.Close()
}

func (s *Session) start() (*editor.Editor, error) {
	if s.editor != nil {
		return s.editor, nil
	}
	opts := append([]editor.Option{editor.WithLogger(s.logger)}, s.opts...)
	e, err := scenario.Build(s.cfg, s.specs, opts...)
	if err != nil {
		return nil, err
	}
	s.editor = e
	s.logger.Debug("editor started", "elements", len(s.specs))
	return e, nil
}
