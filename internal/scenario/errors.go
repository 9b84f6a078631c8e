package scenario

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStep is returned for steps that name no action or more
	// than one.
	ErrUnknownStep = errors.New("unknown step")
	// ErrInvalidScenario is returned for malformed scenario documents.
	ErrInvalidScenario = errors.New("invalid scenario")
	// ErrNoNode is returned when a step path does not resolve to a view
	// node.
	ErrNoNode = errors.New("no view node at path")
)

// LoadError describes a scenario file that could not be read.
type LoadError struct {
	Path string
	Doc  int
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case e.Path != "" && e.Doc > 0:
		return fmt.Sprintf("%s: document %d: %v", e.Path, e.Doc, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	case e.Doc > 0:
		return fmt.Sprintf("document %d: %v", e.Doc, e.Err)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
