package editor

import "errors"

// Errors returned by editor operations.
var (
	// ErrPluginExists indicates a plugin with the same name was already added.
	ErrPluginExists = errors.New("plugin already registered")

	// ErrDestroyed indicates the editor was destroyed.
	ErrDestroyed = errors.New("editor destroyed")
)
