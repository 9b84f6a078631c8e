package scenario

import (
	"context"
	"fmt"

	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/editor"
)

// StepResult is the outcome of one step. Index 0 is the initial data.
type StepResult struct {
	Index    int
	Action   string
	Handled  bool
	Failures []string
}

// Passed returns true if every expectation of the step held.
func (r StepResult) Passed() bool {
	return len(r.Failures) == 0
}

// Result is the outcome of a scenario.
type Result struct {
	Name  string
	Steps []StepResult
}

// Passed returns true if every step passed.
func (r *Result) Passed() bool {
	for _, s := range r.Steps {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// Runner executes scenarios against fresh editors.
type Runner struct {
	cfg    config.Config
	logger *app.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner logger. It is also handed to every editor.
func WithLogger(l *app.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a runner using cfg for every editor it builds.
func NewRunner(cfg config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{cfg: cfg, logger: app.NopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("scenario")
	return r
}

// Run executes s. Expectation mismatches are reported in the result; the
// error is reserved for scenarios that cannot be executed.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	cfg := r.cfg
	if s.Platform != "" {
		cfg.Keystrokes.Platform = s.Platform
	}
	opts := []editor.Option{editor.WithLogger(r.logger)}
	if s.Defaults != nil && !*s.Defaults {
		opts = append(opts, editor.WithoutDefaults())
	}

	e, err := Build(cfg, s.Elements, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	defer e.Destroy()

	if s.ReadOnly {
		e.SetReadOnly(true)
	}
	if err := e.SetData(s.Data); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	res := &Result{Name: s.Name}
	if s.Expect != nil {
		failures, err := check(e, s.Expect, false)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		res.Steps = append(res.Steps, StepResult{Action: "data", Failures: failures})
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		action, _ := step.Action()
		handled, err := perform(e, step)
		if err != nil {
			return res, fmt.Errorf("scenario %q: step %d (%s): %w", s.Name, i+1, action, err)
		}

		sr := StepResult{Index: i + 1, Action: action, Handled: handled}
		if step.Expect != nil {
			sr.Failures, err = check(e, step.Expect, handled)
			if err != nil {
				return res, fmt.Errorf("scenario %q: step %d: %w", s.Name, i+1, err)
			}
		}
		r.logger.Debug("step done", "scenario", s.Name, "step", sr.Index, "action", action, "handled", handled, "passed", sr.Passed())
		res.Steps = append(res.Steps, sr)
	}
	return res, nil
}

// RunAll executes each scenario in turn and stops at the first error.
func (r *Runner) RunAll(ctx context.Context, scenarios []*Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	for _, s := range scenarios {
		res, err := r.Run(ctx, s)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func perform(e *editor.Editor, step Step) (bool, error) {
	switch {
	case step.Key != "":
		return e.PressKey(step.Key)
	case step.Click != nil:
		n := e.ViewNode(step.Click...)
		if n == nil {
			return false, fmt.Errorf("%w %v", ErrNoNode, step.Click)
		}
		return e.Click(n), nil
	case step.Drag != nil:
		d := step.Drag
		n := e.ViewNode(d.Path...)
		if n == nil {
			return false, fmt.Errorf("%w %v", ErrNoNode, d.Path)
		}
		handled := e.MouseDown(n, d.From[0], d.From[1])
		e.MouseMove(n, d.To[0], d.To[1])
		e.MouseUp(n, d.To[0], d.To[1])
		return handled, nil
	case step.ReadOnly != nil:
		e.SetReadOnly(*step.ReadOnly)
		return false, nil
	default:
		return false, e.SetData(step.Data)
	}
}

func check(e *editor.Editor, want *Expect, handled bool) ([]string, error) {
	var failures []string
	if want.Model != "" {
		got, err := e.Data()
		if err != nil {
			return nil, err
		}
		if got != want.Model {
			failures = append(failures, fmt.Sprintf("model = %s, want %s", got, want.Model))
		}
	}
	if want.View != "" {
		got, err := e.ViewData()
		if err != nil {
			return nil, err
		}
		if got != want.View {
			failures = append(failures, fmt.Sprintf("view = %s, want %s", got, want.View))
		}
	}
	sel := e.View().Selection()
	if want.Fake != nil && sel.IsFake() != *want.Fake {
		failures = append(failures, fmt.Sprintf("fake = %t, want %t", sel.IsFake(), *want.Fake))
	}
	if want.Label != nil && sel.FakeLabel() != *want.Label {
		failures = append(failures, fmt.Sprintf("label = %q, want %q", sel.FakeLabel(), *want.Label))
	}
	if want.Handled != nil && handled != *want.Handled {
		failures = append(failures, fmt.Sprintf("handled = %t, want %t", handled, *want.Handled))
	}
	return failures, nil
}
