// Package helix generates Helix editor keymaps that pipe selections
// through "stringmod apply".
//
// Helix replaces every selection with the output of a ":pipe" command, so
// each text action becomes one keybinding. Actions are reachable through a
// minor mode under the leader key, and actions with a configured
// accelerator are also bound directly in normal and select mode.
package helix

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/transform"
)

// ErrUnsupportedKey is returned for chords Helix cannot express.
var ErrUnsupportedKey = errors.New("key has no helix name")

// minorKeys are the keys of the actions inside the minor mode.
var minorKeys = map[transform.Action]string{
	transform.ActionBraces:    "b",
	transform.ActionBrackets:  "k",
	transform.ActionQuotes:    "q",
	transform.ActionCustom:    "c",
	transform.ActionCharArray: "a",
	transform.ActionWordArray: "w",
}

// specialNames maps special keys to Helix key names.
var specialNames = map[key.Key]string{
	key.KeyEscape:    "esc",
	key.KeyEnter:     "ret",
	key.KeyTab:       "tab",
	key.KeyBackspace: "backspace",
	key.KeyDelete:    "del",
	key.KeyInsert:    "ins",
	key.KeyHome:      "home",
	key.KeyEnd:       "end",
	key.KeyPageUp:    "pageup",
	key.KeyPageDown:  "pagedown",
	key.KeyUp:        "up",
	key.KeyDown:      "down",
	key.KeyLeft:      "left",
	key.KeyRight:     "right",
}

// runeNames maps characters that Helix spells out.
var runeNames = map[rune]string{
	' ': "space",
	'-': "minus",
	'<': "lt",
	'>': "gt",
}

// Options configures the generated keymap.
type Options struct {
	// Binary is the command run by ":pipe". Defaults to "stringmod".
	Binary string

	// ConfigPath is passed with --config when not empty.
	ConfigPath string

	// Leader is the normal-mode key opening the minor mode. Defaults to
	// "space".
	Leader string

	// Prefix is the minor-mode key under the leader. Defaults to "s".
	Prefix string

	// SkipAccels leaves the configured accelerators unbound.
	SkipAccels bool
}

func (o *Options) withDefaults() {
	if o.Binary == "" {
		o.Binary = "stringmod"
	}
	if o.Leader == "" {
		o.Leader = "space"
	}
	if o.Prefix == "" {
		o.Prefix = "s"
	}
}

// Keymap is the generated configuration, shaped like Helix's config.toml.
type Keymap struct {
	Keys map[string]map[string]any `toml:"keys"`
}

// Command returns the typable command that runs action on the selections.
func Command(action transform.Action, opts Options) string {
	opts.withDefaults()
	parts := []string{":pipe", shellQuote(opts.Binary)}
	if opts.ConfigPath != "" {
		parts = append(parts, "--config", shellQuote(opts.ConfigPath))
	}
	parts = append(parts, "apply", action.String())
	return strings.Join(parts, " ")
}

// Build creates the keymap for cfg. Accelerators that Helix cannot express
// are skipped and reported in the returned error; the keymap is still
// usable.
func Build(cfg *config.Config, opts Options) (*Keymap, error) {
	opts.withDefaults()

	minor := make(map[string]any, len(transform.Actions))
	for _, a := range transform.Actions {
		minor[minorKeys[a]] = Command(a, opts)
	}

	normal := map[string]any{
		opts.Leader: map[string]any{opts.Prefix: minor},
	}
	sel := make(map[string]any)

	var errs []error
	if !opts.SkipAccels {
		for _, a := range transform.Actions {
			accel := cfg.Accel(a)
			if accel == "" {
				continue
			}
			name, err := accelName(accel)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", a, err))
				continue
			}
			normal[name] = Command(a, opts)
			sel[name] = Command(a, opts)
		}
	}

	km := &Keymap{Keys: map[string]map[string]any{"normal": normal}}
	if len(sel) > 0 {
		km.Keys["select"] = sel
	}
	return km, errors.Join(errs...)
}

// Marshal encodes the keymap as TOML.
func (k *Keymap) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# Generated by stringmod. Merge into ~/.config/helix/config.toml.\n")
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(k); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// KeyName formats c the way Helix writes keys, e.g. "C-b" or "A-F5".
func KeyName(c key.Chord) (string, error) {
	mods := c.Modifiers
	var base string

	switch {
	case c.IsRune():
		r := c.Rune
		if mods.HasShift() && unicode.IsLetter(r) {
			r = unicode.ToUpper(r)
			mods = mods.Without(key.ModShift)
		}
		if n, ok := runeNames[r]; ok {
			base = n
		} else {
			base = string(r)
		}
	case c.IsFunctionKey():
		base = fmt.Sprintf("F%d", int(c.Key-key.KeyF1)+1)
	default:
		n, ok := specialNames[c.Key]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedKey, c)
		}
		base = n
	}

	var prefix strings.Builder
	if mods.HasCtrl() {
		prefix.WriteString("C-")
	}
	if mods.HasAlt() || mods.HasMeta() {
		prefix.WriteString("A-")
	}
	if mods.HasShift() {
		prefix.WriteString("S-")
	}
	return prefix.String() + base, nil
}

func accelName(accel string) (string, error) {
	c, err := key.ParseName(accel)
	if err != nil {
		return "", err
	}
	return KeyName(c)
}

// shellQuote quotes s for the shell Helix runs pipe commands in.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t'\"\\$`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
