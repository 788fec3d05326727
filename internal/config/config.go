package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/dshills/stringmod/internal/transform"
)

// Key identifies one field of the configuration file.
type Key int

// Keys in file order.
const (
	KeyAccelBraces Key = iota
	KeyAccelBrackets
	KeyAccelQuotes
	KeyAccelCustom
	KeyAccelStr2Array
	KeyAccelStr2WArray
	KeyCustomStart
	KeyCustomEnd
	KeyRadioCharArray
	KeyRadioWordArray

	numKeys
)

var keyNames = [numKeys]string{
	"AccelBraces",
	"AccelBrackets",
	"AccelQuotes",
	"AccelCustom",
	"AccelStr2Array",
	"AccelStr2WArray",
	"CustomStart",
	"CustomEnd",
	"RadioCharArray",
	"RadioWordArray",
}

// Keys returns all keys in file order.
func Keys() []Key {
	keys := make([]Key, numKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// String returns the key as written in the file.
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Kebab returns the command-line spelling of the key, e.g. "accel-braces".
func (k Key) Kebab() string {
	return strcase.ToKebab(k.String())
}

// IsAccel reports whether the key holds an accelerator.
func (k Key) IsAccel() bool {
	return k >= KeyAccelBraces && k <= KeyAccelStr2WArray
}

// IsChoice reports whether the key holds a palette index.
func (k Key) IsChoice() bool {
	return k == KeyRadioCharArray || k == KeyRadioWordArray
}

// KeyByName resolves a key from its file name ("AccelBraces") in any case,
// or from a kebab, snake or screaming spelling ("accel-braces",
// "accel_braces", "ACCEL_BRACES").
func KeyByName(name string) (Key, error) {
	want := squash(name)
	if want != "" {
		for i, n := range keyNames {
			if squash(n) == want {
				return Key(i), nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// squash lowercases s and drops word separators.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// accelKeys maps text actions to their accelerator keys.
var accelKeys = map[transform.Action]Key{
	transform.ActionBraces:    KeyAccelBraces,
	transform.ActionBrackets:  KeyAccelBrackets,
	transform.ActionQuotes:    KeyAccelQuotes,
	transform.ActionCustom:    KeyAccelCustom,
	transform.ActionCharArray: KeyAccelStr2Array,
	transform.ActionWordArray: KeyAccelStr2WArray,
}

// AccelKey returns the configuration key holding the accelerator of a.
func AccelKey(a transform.Action) (Key, bool) {
	k, ok := accelKeys[a]
	return k, ok
}

// Config holds the ten configuration fields.
type Config struct {
	AccelBraces     string
	AccelBrackets   string
	AccelQuotes     string
	AccelCustom     string
	AccelStr2Array  string
	AccelStr2WArray string

	CustomStart string
	CustomEnd   string

	// RadioCharArray and RadioWordArray index transform.Palette.
	RadioCharArray int
	RadioWordArray int
}

// Default returns the configuration written on first run: no accelerators,
// double quotes as the custom pair and braces for both conversions.
func Default() *Config {
	return &Config{
		CustomStart: `"`,
		CustomEnd:   `"`,
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Get returns the value of k formatted as it appears in the file.
func (c *Config) Get(k Key) (string, error) {
	switch k {
	case KeyAccelBraces:
		return c.AccelBraces, nil
	case KeyAccelBrackets:
		return c.AccelBrackets, nil
	case KeyAccelQuotes:
		return c.AccelQuotes, nil
	case KeyAccelCustom:
		return c.AccelCustom, nil
	case KeyAccelStr2Array:
		return c.AccelStr2Array, nil
	case KeyAccelStr2WArray:
		return c.AccelStr2WArray, nil
	case KeyCustomStart:
		return c.CustomStart, nil
	case KeyCustomEnd:
		return c.CustomEnd, nil
	case KeyRadioCharArray:
		return strconv.Itoa(c.RadioCharArray), nil
	case KeyRadioWordArray:
		return strconv.Itoa(c.RadioWordArray), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}
}

// Set assigns value to k. Palette indices are parsed and range checked;
// on error c is unchanged.
func (c *Config) Set(k Key, value string) error {
	if k.IsChoice() {
		n, err := parseChoice(value)
		if err != nil {
			return &ValidationError{Key: k, Err: err}
		}
		if k == KeyRadioCharArray {
			c.RadioCharArray = n
		} else {
			c.RadioWordArray = n
		}
		return nil
	}

	if strings.ContainsAny(value, "\r\n") {
		return &ValidationError{Key: k, Err: ErrLineBreak}
	}

	switch k {
	case KeyAccelBraces:
		c.AccelBraces = value
	case KeyAccelBrackets:
		c.AccelBrackets = value
	case KeyAccelQuotes:
		c.AccelQuotes = value
	case KeyAccelCustom:
		c.AccelCustom = value
	case KeyAccelStr2Array:
		c.AccelStr2Array = value
	case KeyAccelStr2WArray:
		c.AccelStr2WArray = value
	case KeyCustomStart:
		c.CustomStart = value
	case KeyCustomEnd:
		c.CustomEnd = value
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}
	return nil
}

// Accel returns the accelerator configured for a.
func (c *Config) Accel(a transform.Action) string {
	k, ok := AccelKey(a)
	if !ok {
		return ""
	}
	v, _ := c.Get(k)
	return v
}

// Validate reports the first field that cannot be written to the file.
func (c *Config) Validate() error {
	for _, k := range Keys() {
		if k.IsChoice() {
			continue
		}
		v, _ := c.Get(k)
		if strings.ContainsAny(v, "\r\n") {
			return &ValidationError{Key: k, Err: ErrLineBreak}
		}
	}
	if !transform.ValidChoice(c.RadioCharArray) {
		return &ValidationError{Key: KeyRadioCharArray, Err: transform.ErrChoiceOutOfRange}
	}
	if !transform.ValidChoice(c.RadioWordArray) {
		return &ValidationError{Key: KeyRadioWordArray, Err: transform.ErrChoiceOutOfRange}
	}
	return nil
}

// Options returns the transformation options carried by c.
func (c *Config) Options() transform.Options {
	return transform.Options{
		CustomStart:     c.CustomStart,
		CustomEnd:       c.CustomEnd,
		CharArrayChoice: c.RadioCharArray,
		WordArrayChoice: c.RadioWordArray,
	}
}

// parseChoice parses a palette index.
func parseChoice(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
	if !transform.ValidChoice(n) {
		return 0, fmt.Errorf("%w: %d", transform.ErrChoiceOutOfRange, n)
	}
	return n, nil
}
