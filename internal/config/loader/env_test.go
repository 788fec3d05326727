package loader

import (
	"errors"
	"testing"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/transform"
)

func envLoader(vars ...string) *EnvLoader {
	l := NewEnvLoader(DefaultEnvPrefix)
	l.environ = func() []string { return vars }
	return l
}

func TestEnvLoader_Overrides(t *testing.T) {
	l := envLoader(
		"STRINGMOD_CUSTOM_START=<<",
		"STRINGMOD_ACCEL_BRACES=",
		"STRINGMOD_CONFIG=/tmp/x.cfg",
		"STRINGMOD_LOG_LEVEL=debug",
		"HOME=/root",
		"CUSTOM_END=nope",
	)

	got := l.Overrides()
	if len(got) != 2 {
		t.Fatalf("Overrides() = %v, want 2 entries", got)
	}
	if got[config.KeyCustomStart] != "<<" {
		t.Errorf("CustomStart = %q, want %q", got[config.KeyCustomStart], "<<")
	}
	if v, ok := got[config.KeyAccelBraces]; !ok || v != "" {
		t.Errorf("AccelBraces = %q, %v, want empty override", v, ok)
	}
}

func TestEnvLoader_Apply(t *testing.T) {
	cfg := config.Default()
	l := envLoader("STRINGMOD_CUSTOM_END=>>", "STRINGMOD_RADIO_CHAR_ARRAY=2")

	if err := l.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if cfg.CustomEnd != ">>" || cfg.RadioCharArray != 2 {
		t.Errorf("Apply() = %+v", cfg)
	}
}

func TestEnvLoader_ApplyInvalid(t *testing.T) {
	cfg := config.Default()
	l := envLoader("STRINGMOD_CUSTOM_END=>>", "STRINGMOD_RADIO_WORD_ARRAY=9")

	err := l.Apply(cfg)
	if !errors.Is(err, transform.ErrChoiceOutOfRange) {
		t.Fatalf("Apply() error = %v, want ErrChoiceOutOfRange", err)
	}
	if cfg.CustomEnd != `"` {
		t.Error("Apply() must not change cfg on error")
	}
}
