package key

import (
	"strings"
	"unicode"
)

// Event is a keystroke as delivered to the view's keydown listeners.
// Key is KeyRune for character keys, in which case Rune holds the
// character.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent returns a character keystroke.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent returns a keystroke for a named key such as KeyDelete.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune reports whether the keystroke produces a character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified reports whether a command modifier is held. Shift does not
// count for character keys since it only changes the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers.Has(ModCtrl | ModAlt | ModMeta)
	}
	return !e.Modifiers.IsEmpty()
}

// String renders the keystroke the way Parse accepts it, e.g. "Ctrl+A".
func (e Event) String() string {
	var name string
	switch {
	case e.Key != KeyRune:
		name = e.Key.String()
	case e.Rune == ' ':
		name = "Space"
	default:
		name = string(unicode.ToUpper(e.Rune))
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// Equals compares keystrokes. Character keys ignore case and Shift, so
// "Ctrl+a" equals "Ctrl+Shift+A".
func (e Event) Equals(other Event) bool {
	if e.Key != other.Key {
		return false
	}
	if e.Key != KeyRune {
		return e.Modifiers == other.Modifiers
	}
	return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune) &&
		e.Modifiers.Without(ModShift) == other.Modifiers.Without(ModShift)
}

// Matches parses keystroke and compares it with e. Invalid keystrokes
// never match.
func (e Event) Matches(keystroke string) bool {
	parsed, err := Parse(strings.TrimSpace(keystroke))
	return err == nil && e.Equals(parsed)
}
