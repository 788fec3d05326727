package lua

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
)

func TestDoString(t *testing.T) {
	var out bytes.Buffer
	s := NewState(WithOutput(&out))
	defer s.Close()

	if err := s.DoString(context.Background(), `x = 1 + 2 print("x", x)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := out.String(); got != "x\t3\n" {
		t.Errorf("output = %q, want %q", got, "x\t3\n")
	}
	if got := s.GetGlobal("x"); got != lua.LNumber(3) {
		t.Errorf("x = %v, want 3", got)
	}
}

func TestDoFile(t *testing.T) {
	var out bytes.Buffer
	s := NewState(WithOutput(&out))
	defer s.Close()

	path := filepath.Join(t.TempDir(), "script.lua")
	if err := os.WriteFile(path, []byte(`print(require("strmod").enclose("a", "(", ")"))`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.DoFile(context.Background(), path); err != nil {
		t.Fatalf("DoFile() error = %v", err)
	}
	if got := out.String(); got != "(a)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSandboxRemovesLoaders(t *testing.T) {
	s := NewState(WithOutput(&bytes.Buffer{}))
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "io", "os", "debug"} {
		if v := s.GetGlobal(name); v != lua.LNil {
			t.Errorf("global %s = %v, want nil", name, v)
		}
	}
}

func TestSandboxRequire(t *testing.T) {
	s := NewState(WithOutput(&bytes.Buffer{}))
	defer s.Close()

	tests := []struct {
		module  string
		wantErr bool
	}{
		{"string", false},
		{"table", false},
		{"math", false},
		{"strmod", false},
		{"os", true},
		{"io", true},
		{"socket", true},
	}
	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			err := s.DoString(context.Background(), `local m = require("`+tt.module+`")`)
			if (err != nil) != tt.wantErr {
				t.Errorf("require(%q) error = %v, wantErr %v", tt.module, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "not available") {
				t.Errorf("error = %v, want 'not available'", err)
			}
		})
	}
	if s.Sandbox().Allows("os") {
		t.Error("os should not be allowed")
	}
}

func TestCall(t *testing.T) {
	s := NewState(WithOutput(&bytes.Buffer{}))
	defer s.Close()

	if err := s.DoString(context.Background(), `function pair(a) return a, a .. a end function none() end`); err != nil {
		t.Fatal(err)
	}

	got, err := s.Call(context.Background(), "pair", lua.LString("x"))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if len(got) != 2 || got[0] != lua.LString("x") || got[1] != lua.LString("xx") {
		t.Errorf("Call() = %v", got)
	}

	got, err = s.Call(context.Background(), "none")
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("Call(none) = %v, %v; want empty slice", got, err)
	}

	if _, err := s.Call(context.Background(), "missing"); !errors.Is(err, ErrNotFunction) {
		t.Errorf("Call(missing) error = %v, want ErrNotFunction", err)
	}
}

func TestExecutionTimeout(t *testing.T) {
	s := NewState(WithOutput(&bytes.Buffer{}), WithExecutionTimeout(50*time.Millisecond))
	defer s.Close()

	err := s.DoString(context.Background(), `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("DoString() error = %v, want ErrExecutionTimeout", err)
	}

	// The state stays usable.
	if err := s.DoString(context.Background(), `y = 1`); err != nil {
		t.Errorf("DoString() after timeout error = %v", err)
	}
}

func TestClose(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !s.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := s.DoString(context.Background(), "x = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString() error = %v, want ErrStateClosed", err)
	}
	if v := s.GetGlobal("x"); v != lua.LNil {
		t.Errorf("GetGlobal() on closed state = %v", v)
	}
}
