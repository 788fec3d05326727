package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses an accelerator specification into a Chord.
//
// Supported formats:
//   - Accelerator names: "<Control>b", "<Control><Shift>F5", "<Alt>space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<F5>"
//   - Single keys: "a", "F5", "Escape"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") {
		if isVimStyle(spec) {
			return parseVimStyle(spec[1 : len(spec)-1])
		}
		return parseAccelStyle(spec)
	}

	// "+" alone is a key, "a+b" is modifier style
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// ParseName parses a stored accelerator. The empty string yields the zero
// Chord and no error.
func ParseName(name string) (Chord, error) {
	if strings.TrimSpace(name) == "" {
		return Chord{}, nil
	}
	return Parse(name)
}

// isVimStyle reports whether spec is a single "<...>" group.
func isVimStyle(spec string) bool {
	return strings.HasSuffix(spec, ">") &&
		strings.Count(spec, "<") == 1 &&
		strings.Count(spec, ">") == 1
}

// parseAccelStyle parses "<Control><Shift>a" notation.
func parseAccelStyle(spec string) (Chord, error) {
	var mods Modifier
	rest := spec

	for strings.HasPrefix(rest, "<") {
		end := strings.Index(rest, ">")
		if end < 0 {
			return Chord{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		name := rest[1:end]
		mod := ModifierFromName(name)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, name)
		}
		mods = mods.With(mod)
		rest = rest[end+1:]
	}

	if rest == "" {
		return Chord{}, fmt.Errorf("%w: %q has no key", ErrInvalidSpec, spec)
	}
	return parseKeyWithModifiers(rest, mods)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) (Chord, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Chord{}, ErrInvalidSpec
	}

	// "-" as the key itself: "<C-->"
	parts := strings.Split(inner, "-")
	if strings.HasSuffix(inner, "--") {
		parts = append(strings.Split(strings.TrimSuffix(inner, "--"), "-"), "-")
	}

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d": // D is Vim's notation for Command/Meta
			mods = mods.With(ModMeta)
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")

	// "Ctrl++" binds the plus key
	if strings.HasSuffix(spec, "++") {
		parts = append(strings.Split(strings.TrimSuffix(spec, "++"), "+"), "+")
	}
	if len(parts) < 2 {
		return Chord{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Chord, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Chord{}, ErrInvalidSpec
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialChord(k, mods), nil
	}

	lower := strings.ToLower(keyPart)
	if r, ok := runeNameMap[lower]; ok {
		return NewRuneChord(r, mods), nil
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		// With Ctrl, Alt or Meta the letter case is not significant
		if mods.Has(ModCtrl | ModAlt | ModMeta) {
			r = unicode.ToLower(r)
		}
		return NewRuneChord(r, mods), nil
	}

	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return c
}

// Normalize parses and re-formats an accelerator to its canonical name.
// The empty string normalizes to itself.
func Normalize(spec string) (string, error) {
	c, err := ParseName(spec)
	if err != nil {
		return "", err
	}
	return c.Name(), nil
}
