package plugin

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestActionGroupAddLookup(t *testing.T) {
	g := NewActionGroup("Group")
	g.Add(&Command{Name: "A", Label: "first"})
	g.Add(&Command{Name: "B"})
	g.Add(&Command{Name: "A", Label: "second"})

	var names []string
	for _, c := range g.Commands() {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"A", "B"}, names); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}

	c, ok := g.Lookup("A")
	if !ok || c.Label != "second" {
		t.Errorf("Lookup(A) = %+v, %v", c, ok)
	}
	if _, ok := g.Lookup("C"); ok {
		t.Error("Lookup(C) should fail")
	}
}

func TestActionGroupActivate(t *testing.T) {
	ran := 0
	g := NewActionGroup("Group")
	g.Add(&Command{Name: "A", Run: func(Window) error {
		ran++
		return nil
	}})
	g.Add(&Command{Name: "Nil"})

	if err := g.Activate("A", nil); err != nil {
		t.Fatalf("Activate(A) error = %v", err)
	}
	if err := g.Activate("Nil", nil); err != nil {
		t.Errorf("Activate(Nil) error = %v", err)
	}
	if err := g.Activate("missing", nil); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Activate(missing) error = %v, want ErrUnknownCommand", err)
	}

	g.SetSensitive(false)
	if err := g.Activate("A", nil); !errors.Is(err, ErrInsensitive) {
		t.Errorf("Activate on insensitive group error = %v, want ErrInsensitive", err)
	}
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}

func TestActionGroupSetAccel(t *testing.T) {
	g := NewActionGroup("Group")
	g.Add(&Command{Name: "A"})
	g.SetAccel("A", "<Control>a")
	g.SetAccel("missing", "F1")

	c, _ := g.Lookup("A")
	if c.Accel != "<Control>a" {
		t.Errorf("Accel = %q", c.Accel)
	}
}

func TestMenuActions(t *testing.T) {
	want := []string{"Braces", "Brackets", "Quotes", "Custom", "Str2CharArray", "Str2WordArray", "Config"}
	if diff := cmp.Diff(want, BuildMenu().Actions()); diff != "" {
		t.Errorf("menu actions mismatch (-want +got):\n%s", diff)
	}

	separators := 0
	for _, it := range BuildMenu().Items {
		if it.Separator {
			separators++
		}
	}
	if separators != 2 {
		t.Errorf("separators = %d, want 2", separators)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateInactive, "inactive"},
		{StateActivating, "activating"},
		{StateActive, "active"},
		{StateDeactivating, "deactivating"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestOperationError(t *testing.T) {
	err := &OperationError{Op: "run", Action: "braces", Err: ErrNotActive}
	if got := err.Error(); got != "run braces: plugin is not active in window" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrNotActive) {
		t.Error("OperationError should unwrap")
	}
	if got := (&OperationError{Op: "activate", Err: ErrNilWindow}).Error(); got != "activate: window is nil" {
		t.Errorf("Error() = %q", got)
	}
}
