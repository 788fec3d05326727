package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/stringmod/internal/config"
)

// DefaultEnvPrefix is the prefix of configuration environment variables.
const DefaultEnvPrefix = "STRINGMOD_"

// EnvLoader reads per-key overrides such as STRINGMOD_CUSTOM_START from the
// environment. Variables whose names do not resolve to a key are ignored,
// so STRINGMOD_CONFIG and friends can share the prefix.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Overrides returns the configured overrides keyed by configuration key.
// Empty values are overrides too.
func (l *EnvLoader) Overrides() map[config.Key]string {
	out := make(map[config.Key]string)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		k, err := config.KeyByName(strings.TrimPrefix(name, l.prefix))
		if err != nil {
			continue
		}
		out[k] = value
	}
	return out
}

// Apply writes the overrides into cfg. cfg is unchanged if any override
// is invalid.
func (l *EnvLoader) Apply(cfg *config.Config) error {
	overrides := l.Overrides()
	next := cfg.Clone()
	for _, k := range config.Keys() {
		v, ok := overrides[k]
		if !ok {
			continue
		}
		if err := next.Set(k, v); err != nil {
			return fmt.Errorf("%s%s: %w", l.prefix, envName(k), err)
		}
	}
	*cfg = *next
	return nil
}

// envName returns the screaming-case variable suffix of k.
func envName(k config.Key) string {
	return strings.ToUpper(strings.ReplaceAll(k.Kebab(), "-", "_"))
}
