package key

import (
	"fmt"
	"unicode"
)

// Chord is a single key press together with its modifiers.
// The zero Chord means "no accelerator".
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneChord creates a chord for a character key.
// Upper-case letters are folded to lower case with Shift added.
func NewRuneChord(r rune, mods Modifier) Chord {
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mods = mods.With(ModShift)
	}
	return Chord{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialChord creates a chord for a special key.
func NewSpecialChord(k Key, mods Modifier) Chord {
	return Chord{Key: k, Modifiers: mods}
}

// IsZero returns true if the chord carries no key.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone
}

// IsRune returns true if this is a character key chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// IsChar returns true if this is a printable character.
func (c Chord) IsChar() bool {
	return c.IsRune() && unicode.IsPrint(c.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character chords, Shift alone is not considered modified
// (since Shift changes the character itself).
func (c Chord) IsModified() bool {
	if c.IsRune() {
		return c.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return c.Modifiers != ModNone
}

// IsFunctionKey returns true if the chord's key is F1-F12.
func (c Chord) IsFunctionKey() bool {
	return c.Key.IsFunctionKey()
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (c Chord) IsEscape() bool {
	return c.Key == KeyEscape && c.Modifiers == ModNone
}

// IsErase returns true for an unmodified Delete or Backspace.
func (c Chord) IsErase() bool {
	return (c.Key == KeyDelete || c.Key == KeyBackspace) && c.Modifiers == ModNone
}

// Equals returns true if two chords represent the same key press.
func (c Chord) Equals(other Chord) bool {
	return c.Key == other.Key &&
		c.Rune == other.Rune &&
		c.Modifiers == other.Modifiers
}

// Name returns the accelerator name, e.g. "<Control>b" or "<Shift>F5".
// The zero chord has the empty name.
func (c Chord) Name() string {
	if c.IsZero() {
		return ""
	}

	keyName := c.Key.accelName()
	if c.Key == KeyRune {
		keyName = runeName(c.Rune)
	}
	return c.Modifiers.accelPrefix() + keyName
}

// String returns the accelerator name.
func (c Chord) String() string {
	return c.Name()
}

// GoString implements fmt.GoStringer for debugging.
func (c Chord) GoString() string {
	return fmt.Sprintf("Chord{Key: %s, Rune: %q, Modifiers: %s}",
		c.Key.String(), c.Rune, c.Modifiers.String())
}

// runeName spells characters that would be ambiguous inside an accelerator.
func runeName(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '<':
		return "less"
	case '>':
		return "greater"
	case '+':
		return "plus"
	default:
		return string(r)
	}
}
