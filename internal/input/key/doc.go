// Package key provides key event types and keystroke parsing for the view
// document's keydown events.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (editing keys, arrows, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and timestamp
//
// # Keystrokes
//
// Keystrokes are written as "Ctrl+A", "Shift+Left", "Backspace" or "a".
// ParseKeystroke additionally resolves the platform modifier: on macOS a
// "Ctrl" in a keystroke means the Command (Meta) key, so a single
// configured "Ctrl+A" matches the native select-all gesture everywhere.
package key
