package config

import (
	"errors"
	"strings"

	"github.com/dshills/blockedit/internal/input/key"
)

// Config is the complete editor configuration.
type Config struct {
	Widget     WidgetConfig    `toml:"widget" yaml:"widget"`
	Keystrokes KeystrokeConfig `toml:"keystrokes" yaml:"keystrokes"`
	Resize     ResizeConfig    `toml:"resize" yaml:"resize"`
	Editor     EditorConfig    `toml:"editor" yaml:"editor"`
	Log        LogConfig       `toml:"log" yaml:"log"`
}

// WidgetConfig holds widget presentation settings.
type WidgetConfig struct {
	// Class is added to every widget element.
	Class string `toml:"class" yaml:"class"`
	// SelectedClass is added to widgets covered by the selection.
	SelectedClass string `toml:"selected_class" yaml:"selected_class"`
	// EditableClass is added to nested editables.
	EditableClass string `toml:"editable_class" yaml:"editable_class"`
}

// KeystrokeConfig holds keyboard settings.
type KeystrokeConfig struct {
	// SelectAll is the scoped select-all keystroke, e.g. "Ctrl+A".
	SelectAll string `toml:"select_all" yaml:"select_all"`
	// Platform is "auto", "mac" or "other". On mac Ctrl maps to Meta.
	Platform string `toml:"platform" yaml:"platform"`
}

// ResizeConfig holds widget resizing settings.
type ResizeConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	// SizeAttribute is the model attribute receiving the committed height.
	SizeAttribute     string `toml:"size_attribute" yaml:"size_attribute"`
	WrapperClass      string `toml:"wrapper_class" yaml:"wrapper_class"`
	HandleClass       string `toml:"handle_class" yaml:"handle_class"`
	ShadowClass       string `toml:"shadow_class" yaml:"shadow_class"`
	ShadowActiveClass string `toml:"shadow_active_class" yaml:"shadow_active_class"`
}

// EditorConfig holds editor behavior settings.
type EditorConfig struct {
	ReadOnly bool `toml:"read_only" yaml:"read_only"`
	// DefaultBlock replaces a deleted block object.
	DefaultBlock string `toml:"default_block" yaml:"default_block"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Widget: WidgetConfig{
			Class:         "ck-widget",
			SelectedClass: "ck-widget_selected",
			EditableClass: "ck-editor__nested-editable",
		},
		Keystrokes: KeystrokeConfig{
			SelectAll: "Ctrl+A",
			Platform:  "auto",
		},
		Resize: ResizeConfig{
			Enabled:           true,
			SizeAttribute:     "height",
			WrapperClass:      "ck-widget_with-resizer",
			HandleClass:       "ck-widget__resizer",
			ShadowClass:       "ck-widget__resizer-shadow",
			ShadowActiveClass: "ck-widget__resizer-shadow-active",
		},
		Editor: EditorConfig{
			DefaultBlock: "paragraph",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Platform returns the configured keystroke platform.
func (c Config) Platform() key.Platform {
	switch strings.ToLower(c.Keystrokes.Platform) {
	case "mac":
		return key.PlatformMac
	case "other":
		return key.PlatformOther
	default:
		return key.PlatformAuto
	}
}

// SelectAllKeystroke parses the select-all keystroke for the configured
// platform.
func (c Config) SelectAllKeystroke() (key.Event, error) {
	return key.ParseKeystroke(c.Keystrokes.SelectAll, c.Platform())
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs []error
	required := map[string]string{
		"widget.class":               c.Widget.Class,
		"widget.selected_class":      c.Widget.SelectedClass,
		"editor.default_block":       c.Editor.DefaultBlock,
		"resize.size_attribute":      c.Resize.SizeAttribute,
		"resize.handle_class":        c.Resize.HandleClass,
		"resize.shadow_active_class": c.Resize.ShadowActiveClass,
	}
	for _, path := range sortedKeys(required) {
		value := required[path]
		if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t") {
			errs = append(errs, &ValidationError{Path: path, Message: "must be a single non-empty name", Value: value})
		}
	}

	if _, err := c.SelectAllKeystroke(); err != nil {
		errs = append(errs, &ValidationError{Path: "keystrokes.select_all", Message: err.Error(), Value: c.Keystrokes.SelectAll})
	}
	switch strings.ToLower(c.Keystrokes.Platform) {
	case "", "auto", "mac", "other":
	default:
		errs = append(errs, &ValidationError{Path: "keystrokes.platform", Message: "must be auto, mac or other", Value: c.Keystrokes.Platform})
	}
	switch c.Log.Format {
	case "", "text", "logfmt", "json":
	default:
		errs = append(errs, &ValidationError{Path: "log.format", Message: "must be text, logfmt or json", Value: c.Log.Format})
	}

	return errors.Join(errs...)
}
