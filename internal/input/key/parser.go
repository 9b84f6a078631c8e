package key

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Platform selects how the "Ctrl" modifier of a keystroke is resolved.
type Platform string

const (
	// PlatformAuto resolves to the platform the process runs on.
	PlatformAuto Platform = "auto"
	// PlatformMac maps Ctrl in keystrokes to the Command (Meta) key.
	PlatformMac Platform = "mac"
	// PlatformOther keeps Ctrl as Ctrl.
	PlatformOther Platform = "other"
)

// Resolve returns PlatformMac or PlatformOther.
func (p Platform) Resolve() Platform {
	switch p {
	case PlatformMac, PlatformOther:
		return p
	}
	if runtime.GOOS == "darwin" {
		return PlatformMac
	}
	return PlatformOther
}

// Parse parses a keystroke specification into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Escape", "Backspace", "Delete", "Left", "Space"
//   - With modifiers: "Ctrl+A", "Shift+Left", "Ctrl+Shift+Z"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A lone "+" is a character, "Ctrl++" is Ctrl with "+".
	if spec == "+" {
		return NewRuneEvent('+', ModNone), nil
	}
	if strings.HasSuffix(spec, "++") {
		spec = strings.TrimSuffix(spec, "++") + "+plus"
	}

	parts := strings.Split(spec, "+")

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, strings.TrimSpace(p))
		}
		mods = mods.With(mod)
	}

	return parseKey(parts[len(parts)-1], mods)
}

// ParseKeystroke parses a keystroke and resolves the platform modifier.
func ParseKeystroke(spec string, platform Platform) (Event, error) {
	ev, err := Parse(spec)
	if err != nil {
		return Event{}, err
	}
	if platform.Resolve() == PlatformMac && ev.Modifiers.HasCtrl() {
		ev.Modifiers = ev.Modifiers.Without(ModCtrl).With(ModMeta)
	}
	return ev, nil
}

// parseKey parses the key part of a keystroke with already-known modifiers.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "plus":
		return NewRuneEvent('+', mods), nil
	case "space":
		return NewRuneEvent(' ', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	r := runes[0]
	// Uppercase letters without other modifiers have implicit Shift
	if mods == ModNone && unicode.IsUpper(r) {
		return NewRuneEvent(r, ModShift), nil
	}
	if !mods.IsEmpty() {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
