package key

import "testing"

func TestModifierHas(t *testing.T) {
	all := ModCtrl | ModShift | ModAlt | ModMeta
	tests := []struct {
		m    Modifier
		mask Modifier
		want bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModShift, ModCtrl | ModAlt, false},
		{ModAlt, ModCtrl | ModAlt | ModMeta, true},
		{all, ModMeta, true},
		{all, ModNone, false},
	}
	for _, tt := range tests {
		if got := tt.m.Has(tt.mask); got != tt.want {
			t.Errorf("%q.Has(%q) = %v, want %v", tt.m, tt.mask, got, tt.want)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.HasCtrl() || !m.HasShift() {
		t.Fatalf("With = %q, want Ctrl+Shift", m)
	}
	m = m.Without(ModShift)
	if m != ModCtrl {
		t.Errorf("Without(ModShift) = %q, want Ctrl", m)
	}
	if got := ModAlt.Without(ModCtrl); got != ModAlt {
		t.Errorf("Without of an absent modifier = %q, want Alt", got)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		m          Modifier
		display    string
		accelNames string
	}{
		{ModNone, "", ""},
		{ModCtrl, "Ctrl", "<Control>"},
		{ModMeta, "Meta", "<Meta>"},
		{ModAlt | ModShift, "Shift+Alt", "<Shift><Alt>"},
		{ModMeta | ModAlt | ModShift | ModCtrl, "Ctrl+Shift+Alt+Meta", "<Control><Shift><Alt><Meta>"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.display {
			t.Errorf("String() = %q, want %q", got, tt.display)
		}
		if got := tt.m.accelPrefix(); got != tt.accelNames {
			t.Errorf("accelPrefix() = %q, want %q", got, tt.accelNames)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"Control", ModCtrl},
		{" primary ", ModCtrl},
		{"c", ModCtrl},
		{"SHIFT", ModShift},
		{"Mod1", ModAlt},
		{"opt", ModAlt},
		{"Super", ModMeta},
		{"d", ModMeta},
		{"hyper", ModNone},
		{"", ModNone},
	}
	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
