package dialog

import (
	"errors"
	"fmt"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/input/keymap"
)

// ApplyAccels binds the accelerators of cfg to their accel paths. All paths
// are cleared first so accelerators may move between actions. A path whose
// accelerator cannot be parsed, or is owned by an action outside paths,
// ends up without one; those failures are returned joined.
func ApplyAccels(m *keymap.AccelMap, paths map[config.Key]string, cfg *config.Config) error {
	for _, k := range config.Keys() {
		if p, ok := paths[k]; ok {
			m.AddEntry(p, key.Chord{})
			m.ChangeEntry(p, key.Chord{}, false)
		}
	}

	var errs []error
	for _, k := range config.Keys() {
		p, ok := paths[k]
		if !ok {
			continue
		}
		name, _ := cfg.Get(k)
		chord, err := key.ParseName(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
			continue
		}
		if chord.IsZero() {
			continue
		}
		if !m.ChangeEntry(p, chord, false) {
			errs = append(errs, fmt.Errorf("%s: %w", k, m.Conflict(p, chord)))
		}
	}
	return errors.Join(errs...)
}
