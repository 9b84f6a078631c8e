// Package editor composes the engine packages into a working editor.
//
// An Editor owns the schema, the model and view documents, the mapper,
// the editing controller and the selection-modification service. Features
// are added as plugins, which subscribe to the view document's events and
// to the editing controller's selection hook during Init.
//
// The editor also installs default behaviors at normal priority: caret
// movement, deletion, typing and whole-document select-all. Plugins that
// handle an input at a higher priority stop it before the defaults run.
package editor
