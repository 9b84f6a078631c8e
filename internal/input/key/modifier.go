package key

import "strings"

// Modifier is a set of modifier keys held during a key or pointer event.
type Modifier uint8

// Modifier bits. Alt is Option and Meta is Command on macOS.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// modifierOrder is the order modifiers are written in keystrokes.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// modifierAliases accepts the names browsers and platforms use.
var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"super":   ModMeta,
}

// Has reports whether any bit of mod is set in m.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool  { return m.Has(ModMeta) }

// With adds mod to m.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without clears mod from m.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// IsEmpty reports whether no modifier is held.
func (m Modifier) IsEmpty() bool { return m == ModNone }

// String joins the held modifiers in keystroke order, e.g. "Ctrl+Shift".
func (m Modifier) String() string {
	var b strings.Builder
	for _, entry := range modifierOrder {
		if !m.Has(entry.mod) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(entry.name)
	}
	return b.String()
}

// ModifierFromName resolves a modifier name or alias, ignoring case.
// Unknown names yield ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}
