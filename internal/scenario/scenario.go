package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted session.
type Scenario struct {
	Name     string        `yaml:"name"`
	Platform string        `yaml:"platform"`
	Defaults *bool         `yaml:"defaults"`
	ReadOnly bool          `yaml:"read_only"`
	Elements []ElementSpec `yaml:"elements"`
	Data     string        `yaml:"data"`
	Expect   *Expect       `yaml:"expect"`
	Steps    []Step        `yaml:"steps"`
}

// ElementSpec declares a model element type and its view rendering.
type ElementSpec struct {
	Name      string `yaml:"name"`
	View      string `yaml:"view"`
	Object    bool   `yaml:"object"`
	Limit     bool   `yaml:"limit"`
	Block     bool   `yaml:"block"`
	AllowText bool   `yaml:"allow_text"`
	Widget    bool   `yaml:"widget"`
	Label     string `yaml:"label"`
	Editable  bool   `yaml:"editable"`
	Resizable bool   `yaml:"resizable"`
}

// Step is one user action and its expectations. Exactly one action field
// must be set.
type Step struct {
	Key      string  `yaml:"key"`
	Click    []int   `yaml:"click"`
	Drag     *Drag   `yaml:"drag"`
	ReadOnly *bool   `yaml:"read_only"`
	Data     string  `yaml:"data"`
	Expect   *Expect `yaml:"expect"`
}

// Drag is a pointer drag on the view node at Path.
type Drag struct {
	Path []int `yaml:"path"`
	From []int `yaml:"from"`
	To   []int `yaml:"to"`
}

// Expect lists the checks made after a step. Unset fields are not
// checked.
type Expect struct {
	Model   string  `yaml:"model"`
	View    string  `yaml:"view"`
	Fake    *bool   `yaml:"fake"`
	Label   *string `yaml:"label"`
	Handled *bool   `yaml:"handled"`
}

// Action returns a short description of the step action.
func (s Step) Action() (string, error) {
	var actions []string
	if s.Key != "" {
		actions = append(actions, "key "+s.Key)
	}
	if s.Click != nil {
		actions = append(actions, fmt.Sprintf("click %v", s.Click))
	}
	if s.Drag != nil {
		actions = append(actions, fmt.Sprintf("drag %v", s.Drag.Path))
	}
	if s.ReadOnly != nil {
		actions = append(actions, fmt.Sprintf("read_only %t", *s.ReadOnly))
	}
	if s.Data != "" {
		actions = append(actions, "data")
	}
	switch len(actions) {
	case 0:
		return "", fmt.Errorf("%w: no action", ErrUnknownStep)
	case 1:
		return actions[0], nil
	default:
		return "", fmt.Errorf("%w: several actions: %s", ErrUnknownStep, strings.Join(actions, ", "))
	}
}

// Validate checks the scenario structure.
func (s *Scenario) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for i, el := range s.Elements {
		if el.Name == "" {
			errs = append(errs, fmt.Errorf("%w: element %d has no name", ErrInvalidScenario, i))
			continue
		}
		if seen[el.Name] {
			errs = append(errs, fmt.Errorf("%w: element %q declared twice", ErrInvalidScenario, el.Name))
		}
		seen[el.Name] = true
		if el.Editable && el.Widget {
			errs = append(errs, fmt.Errorf("%w: element %q is both widget and editable", ErrInvalidScenario, el.Name))
		}
	}
	for i, step := range s.Steps {
		if _, err := step.Action(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
			continue
		}
		if d := step.Drag; d != nil && (len(d.From) != 2 || len(d.To) != 2) {
			errs = append(errs, fmt.Errorf("%w: step %d: drag needs from and to as [x, y]", ErrInvalidScenario, i+1))
		}
	}
	return errors.Join(errs...)
}

// Decode reads every scenario document from r.
func Decode(r io.Reader) ([]*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Scenario
	for doc := 1; ; doc++ {
		var s Scenario
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, &LoadError{Doc: doc, Err: fmt.Errorf("%w: %v", ErrInvalidScenario, err)}
		}
		if err := s.Validate(); err != nil {
			return nil, &LoadError{Doc: doc, Err: err}
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", doc)
		}
		out = append(out, &s)
	}
}

// LoadFile reads the scenarios in the file at path.
func LoadFile(path string) ([]*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	scenarios, err := Decode(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return scenarios, nil
}
