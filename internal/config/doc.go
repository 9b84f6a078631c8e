// Package config provides the configuration for blockedit.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, selected by extension (Loader.Load)
//  3. BLOCKEDIT_* environment variables (ApplyEnv)
//
// Validate checks the result: class names must be non-empty and the
// select-all keystroke must parse.
//
// # Example
//
//	[widget]
//	class = "ck-widget"
//	selected_class = "ck-widget_selected"
//
//	[keystrokes]
//	select_all = "Ctrl+A"
//	platform = "auto"
//
//	[resize]
//	enabled = true
//	size_attribute = "height"
package config
