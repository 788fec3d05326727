package key

import (
	"errors"
	"testing"
)

func TestParseAccelStyle(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"<Control>b", KeyRune, 'b', ModCtrl},
		{"<Control>B", KeyRune, 'b', ModCtrl},
		{"<Primary>b", KeyRune, 'b', ModCtrl},
		{"<Control><Shift>F5", KeyF5, 0, ModCtrl | ModShift},
		{"<Shift><Control>F5", KeyF5, 0, ModCtrl | ModShift},
		{"<Alt>space", KeyRune, ' ', ModAlt},
		{"<Mod1>x", KeyRune, 'x', ModAlt},
		{"<Control>Return", KeyEnter, 0, ModCtrl},
		{"<Control>less", KeyRune, '<', ModCtrl},
		{"<Super>Page_Down", KeyPageDown, 0, ModMeta},
	}

	for _, tt := range tests {
		c, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if c.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, c.Key, tt.wantKey)
		}
		if tt.wantKey == KeyRune && c.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, c.Rune, tt.wantRune)
		}
		if c.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, c.Modifiers, tt.wantMod)
		}
	}
}

func TestParseSingleKey(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"a", KeyRune, 'a', ModNone},
		{"A", KeyRune, 'a', ModShift},
		{"1", KeyRune, '1', ModNone},
		{"+", KeyRune, '+', ModNone},
		{"F1", KeyF1, 0, ModNone},
		{"Escape", KeyEscape, 0, ModNone},
		{"pagedown", KeyPageDown, 0, ModNone},
	}

	for _, tt := range tests {
		c, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if c.Key != tt.wantKey || c.Rune != tt.wantRune || c.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) = %#v, want key %v rune %q mods %v", tt.spec, c, tt.wantKey, tt.wantRune, tt.wantMod)
		}
	}
}

func TestParseModifierStyle(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"Ctrl+s", KeyRune, 's', ModCtrl},
		{"Ctrl+S", KeyRune, 's', ModCtrl}, // Ctrl makes lowercase
		{"Alt+f", KeyRune, 'f', ModAlt},
		{"Ctrl+Alt+x", KeyRune, 'x', ModCtrl | ModAlt},
		{"Ctrl+Shift+p", KeyRune, 'p', ModCtrl | ModShift},
		{"Ctrl+Enter", KeyEnter, 0, ModCtrl},
		{"Alt+F4", KeyF4, 0, ModAlt},
		{"Ctrl++", KeyRune, '+', ModCtrl},
	}

	for _, tt := range tests {
		c, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if c.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, c.Key, tt.wantKey)
		}
		if tt.wantKey == KeyRune && c.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, c.Rune, tt.wantRune)
		}
		if c.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, c.Modifiers, tt.wantMod)
		}
	}
}

func TestParseVimStyle(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"<C-s>", KeyRune, 's', ModCtrl},
		{"<A-f>", KeyRune, 'f', ModAlt},
		{"<C-A-x>", KeyRune, 'x', ModCtrl | ModAlt},
		{"<C-S-p>", KeyRune, 'p', ModCtrl | ModShift},
		{"<D-s>", KeyRune, 's', ModMeta}, // D is Vim's meta/command
		{"<C-->", KeyRune, '-', ModCtrl},
		{"<CR>", KeyEnter, 0, ModNone},
		{"<Esc>", KeyEscape, 0, ModNone},
		{"<Space>", KeyRune, ' ', ModNone},
		{"<F1>", KeyF1, 0, ModNone},
		{"<C-CR>", KeyEnter, 0, ModCtrl},
	}

	for _, tt := range tests {
		c, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if c.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, c.Key, tt.wantKey)
		}
		if tt.wantKey == KeyRune && c.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, c.Rune, tt.wantRune)
		}
		if c.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, c.Modifiers, tt.wantMod)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"  ", ErrEmptySpec},
		{"<>", ErrInvalidSpec},
		{"<C->", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"<Hyper>a", ErrInvalidSpec},
		{"<Control>", ErrInvalidSpec},
		{"<Control><Shift>", ErrInvalidSpec},
		{"<Control", ErrUnmatchedBracket},
		{"Ctrl+", ErrInvalidSpec},
		{"Unknown+a", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
	}
}

func TestParseNameEmpty(t *testing.T) {
	c, err := ParseName("")
	if err != nil {
		t.Fatalf("ParseName(\"\") error = %v", err)
	}
	if !c.IsZero() {
		t.Errorf("ParseName(\"\") = %#v, want zero chord", c)
	}
}

func TestNameRoundTrip(t *testing.T) {
	chords := []Chord{
		NewRuneChord('b', ModCtrl),
		NewRuneChord('q', ModCtrl|ModShift|ModAlt),
		NewRuneChord(' ', ModAlt),
		NewRuneChord('<', ModCtrl),
		NewRuneChord('>', ModMeta),
		NewRuneChord('+', ModCtrl),
		NewRuneChord('-', ModCtrl),
		NewSpecialChord(KeyF12, ModNone),
		NewSpecialChord(KeyBackspace, ModCtrl),
		NewSpecialChord(KeyPageDown, ModShift),
	}

	for _, c := range chords {
		got, err := Parse(c.Name())
		if err != nil {
			t.Errorf("Parse(%q) error = %v", c.Name(), err)
			continue
		}
		if !got.Equals(c) {
			t.Errorf("Parse(%q) = %#v, want %#v", c.Name(), got, c)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"", ""},
		{"Ctrl+B", "<Control>b"},
		{"<C-S-F5>", "<Control><Shift>F5"},
		{"<Shift><Control>F5", "<Control><Shift>F5"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.spec)
		if err != nil {
			t.Errorf("Normalize(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}
