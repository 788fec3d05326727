package transform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnclose(t *testing.T) {
	tests := []struct {
		s, open, close string
		want           string
	}{
		{"abc", "{", "}", "{abc}"},
		{"abc", `"`, `"`, `"abc"`},
		{"x", "<<", ">>", "<<x>>"},
		{"a b", "", "", "a b"},
	}

	for _, tt := range tests {
		if got := Enclose(tt.s, tt.open, tt.close); got != tt.want {
			t.Errorf("Enclose(%q, %q, %q) = %q, want %q", tt.s, tt.open, tt.close, got, tt.want)
		}
	}
}

func TestCharArray(t *testing.T) {
	tests := []struct {
		s    string
		p    Pair
		want string
	}{
		{"ab", Brackets, "[ 'a', 'b' ]"},
		{"a", Braces, "{ 'a' }"},
		{"a b", Parens, "( 'a', ' ', 'b' )"},
		{"héé", Braces, "{ 'h', 'é', 'é' }"},
		{"\xff", Braces, "{ '\xff' }"},
		{"a\xe2\x82b", Brackets, "[ 'a', '\xe2', '\x82', 'b' ]"},
	}

	for _, tt := range tests {
		if got := CharArray(tt.s, tt.p); got != tt.want {
			t.Errorf("CharArray(%q, %v) = %q, want %q", tt.s, tt.p, got, tt.want)
		}
	}
}

func TestWordArray(t *testing.T) {
	tests := []struct {
		s    string
		p    Pair
		want string
	}{
		{"foo, bar;baz", Parens, "( 'foo', 'bar', 'baz' )"},
		{"  one two\tthree\n", Braces, "{ 'one', 'two', 'three' }"},
		{"solo", Brackets, "[ 'solo' ]"},
		{"a,,;  b", Braces, "{ 'a', 'b' }"},
	}

	for _, tt := range tests {
		if got := WordArray(tt.s, tt.p); got != tt.want {
			t.Errorf("WordArray(%q, %v) = %q, want %q", tt.s, tt.p, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		s    string
		want []string
	}{
		{"foo bar", []string{"foo", "bar"}},
		{"  padded  ", []string{"padded"}},
		{",lead", []string{"", "lead"}},
		{"trail;", []string{"trail", ""}},
		{"   ", []string{""}},
		{"foo\vbar", []string{"foo", "bar"}},
		{"foo\u00a0bar", []string{"foo", "bar"}},
		{"foo\u3000\u2003bar\u0085baz", []string{"foo", "bar", "baz"}},
		{"\u00a0foo bar\u00a0", []string{"foo", "bar"}},
		{"a\u00a0,\vb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Words(tt.s)); diff != "" {
			t.Errorf("Words(%q) mismatch (-want +got):\n%s", tt.s, diff)
		}
	}
}

func TestPairAt(t *testing.T) {
	for i, want := range Palette {
		got, err := PairAt(i)
		if err != nil {
			t.Fatalf("PairAt(%d) error = %v", i, err)
		}
		if got != want {
			t.Errorf("PairAt(%d) = %v, want %v", i, got, want)
		}
	}

	for _, i := range []int{-1, 3, 42} {
		if _, err := PairAt(i); !errors.Is(err, ErrChoiceOutOfRange) {
			t.Errorf("PairAt(%d) error = %v, want ErrChoiceOutOfRange", i, err)
		}
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
	}{
		{"braces", ActionBraces},
		{"Brackets", ActionBrackets},
		{" quotes ", ActionQuotes},
		{"custom", ActionCustom},
		{"char-array", ActionCharArray},
		{"Str2CharArray", ActionCharArray},
		{"word-array", ActionWordArray},
		{"Str2WordArray", ActionWordArray},
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.name)
		if err != nil {
			t.Errorf("ParseAction(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseAction("reverse"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("ParseAction(reverse) error = %v, want ErrUnknownAction", err)
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", a.String(), got, err, a)
		}
	}
}

func TestApply(t *testing.T) {
	opts := Options{CustomStart: "<!--", CustomEnd: "-->", CharArrayChoice: 1, WordArrayChoice: 2}

	tests := []struct {
		action Action
		s      string
		want   string
		ok     bool
	}{
		{ActionBraces, "x", "{x}", true},
		{ActionBrackets, "x", "[x]", true},
		{ActionQuotes, "x", `"x"`, true},
		{ActionCustom, "x", "<!--x-->", true},
		{ActionCharArray, "xy", "[ 'x', 'y' ]", true},
		{ActionWordArray, "x y", "( 'x', 'y' )", true},
		{ActionBraces, "", "", false},
		{ActionWordArray, "", "", false},
		{ActionNone, "x", "", false},
	}

	for _, tt := range tests {
		got, ok, err := Apply(tt.action, tt.s, opts)
		if err != nil {
			t.Errorf("Apply(%v, %q) error = %v", tt.action, tt.s, err)
			continue
		}
		if got != tt.want || ok != tt.ok {
			t.Errorf("Apply(%v, %q) = %q, %v; want %q, %v", tt.action, tt.s, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyUndefinedAction(t *testing.T) {
	if _, ok, err := Apply(Action(42), "x", DefaultOptions()); !errors.Is(err, ErrUnknownAction) || ok {
		t.Errorf("Apply(42) = ok %v, err %v; want ErrUnknownAction", ok, err)
	}
}

func TestApplyInvalidChoice(t *testing.T) {
	opts := DefaultOptions()
	opts.CharArrayChoice = 5

	if _, ok, err := Apply(ActionCharArray, "ab", opts); !errors.Is(err, ErrChoiceOutOfRange) || ok {
		t.Errorf("Apply with bad choice = ok %v, err %v; want ErrChoiceOutOfRange", ok, err)
	}
}
