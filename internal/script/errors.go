package script

import "errors"

var (
	// ErrStateClosed is returned when running code on a closed state.
	ErrStateClosed = errors.New("lua state is closed")
	// ErrEditorStarted is returned by define once the editor exists.
	ErrEditorStarted = errors.New("editor already started")
	// ErrNoNode is returned when a path does not resolve to a view node.
	ErrNoNode = errors.New("no view node at path")
)
