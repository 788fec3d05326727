package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModMeta
)

// modifierInfo describes one modifier bit. The slice order is the order
// modifiers appear in accelerator names.
var modifierInfo = []struct {
	mod     Modifier
	display string
	accel   string
	aliases []string
}{
	{ModCtrl, "Ctrl", "<Control>", []string{"ctrl", "control", "ctl", "primary", "c"}},
	{ModShift, "Shift", "<Shift>", []string{"shift", "shft", "s"}},
	{ModAlt, "Alt", "<Alt>", []string{"alt", "mod1", "option", "opt", "a"}},
	{ModMeta, "Meta", "<Meta>", []string{"meta", "super", "cmd", "command", "win", "m", "d"}},
}

var modifierByName = func() map[string]Modifier {
	m := make(map[string]Modifier)
	for _, info := range modifierInfo {
		for _, alias := range info.aliases {
			m[alias] = info.mod
		}
	}
	return m
}()

// Has reports whether m holds any modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool  { return m.Has(ModMeta) }

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m minus mod.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String joins the held modifiers with "+", e.g. "Ctrl+Shift".
func (m Modifier) String() string {
	var parts []string
	for _, info := range modifierInfo {
		if m.Has(info.mod) {
			parts = append(parts, info.display)
		}
	}
	return strings.Join(parts, "+")
}

// accelPrefix returns the bracketed prefix of an accelerator name, e.g.
// "<Control><Shift>".
func (m Modifier) accelPrefix() string {
	var b strings.Builder
	for _, info := range modifierInfo {
		if m.Has(info.mod) {
			b.WriteString(info.accel)
		}
	}
	return b.String()
}

// ModifierFromName looks up a modifier by any of its aliases, ignoring case.
// Unknown names give ModNone.
func ModifierFromName(name string) Modifier {
	return modifierByName[strings.ToLower(strings.TrimSpace(name))]
}
