package keymap

import (
	"sync"

	"github.com/dshills/stringmod/internal/input/key"
)

// ChangeFunc is called after the chord of a path changed.
type ChangeFunc func(path string, chord key.Chord)

// AccelMap maps accel paths to chords. It is safe for concurrent use.
type AccelMap struct {
	mu sync.RWMutex

	// entries holds the chord of every known path.
	entries map[string]key.Chord

	// owners is the reverse index, keyed by chord name.
	owners map[string]string

	listeners []ChangeFunc
}

// NewAccelMap creates an empty accelerator map.
func NewAccelMap() *AccelMap {
	return &AccelMap{
		entries: make(map[string]key.Chord),
		owners:  make(map[string]string),
	}
}

// OnChange registers fn to be called after every successful change.
// Listeners run without the map lock held.
func (m *AccelMap) OnChange(fn ChangeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// AddEntry registers path with chord. An existing entry for path is left
// untouched; use ChangeEntry to modify it. If chord is already owned by
// another path the entry is added without an accelerator.
func (m *AccelMap) AddEntry(path string, chord key.Chord) {
	m.mu.Lock()
	if _, ok := m.entries[path]; ok {
		m.mu.Unlock()
		return
	}
	if !chord.IsZero() {
		if _, taken := m.owners[chord.Name()]; taken {
			chord = key.Chord{}
		}
	}
	m.setLocked(path, chord)
	listeners := m.listeners
	m.mu.Unlock()

	notify(listeners, path, chord)
}

// ChangeEntry sets the chord of an existing path. When chord is already owned
// by a different path, the change fails unless replace is true, in which case
// the other path loses its accelerator. It returns false if path is unknown
// or the change conflicts.
func (m *AccelMap) ChangeEntry(path string, chord key.Chord, replace bool) bool {
	m.mu.Lock()
	if _, ok := m.entries[path]; !ok {
		m.mu.Unlock()
		return false
	}

	var displaced string
	if !chord.IsZero() {
		if owner, taken := m.owners[chord.Name()]; taken && owner != path {
			if !replace {
				m.mu.Unlock()
				return false
			}
			displaced = owner
			m.setLocked(owner, key.Chord{})
		}
	}
	m.setLocked(path, chord)
	listeners := m.listeners
	m.mu.Unlock()

	if displaced != "" {
		notify(listeners, displaced, key.Chord{})
	}
	notify(listeners, path, chord)
	return true
}

// Lookup returns the chord of path.
func (m *AccelMap) Lookup(path string) (key.Chord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.entries[path]
	return c, ok
}

// Resolve returns the path bound to chord.
func (m *AccelMap) Resolve(chord key.Chord) (string, bool) {
	if chord.IsZero() {
		return "", false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.owners[chord.Name()]
	return p, ok
}

// Conflict returns an error if chord is bound to a path other than path.
func (m *AccelMap) Conflict(path string, chord key.Chord) error {
	owner, ok := m.Resolve(chord)
	if !ok || owner == path {
		return nil
	}
	return &ConflictError{Chord: chord.Name(), Owner: owner}
}

// setLocked replaces the chord of path and keeps the reverse index in sync.
// Caller must hold the write lock.
func (m *AccelMap) setLocked(path string, chord key.Chord) {
	if old, ok := m.entries[path]; ok && !old.IsZero() {
		if m.owners[old.Name()] == path {
			delete(m.owners, old.Name())
		}
	}
	m.entries[path] = chord
	if !chord.IsZero() {
		m.owners[chord.Name()] = path
	}
}

func notify(listeners []ChangeFunc, path string, chord key.Chord) {
	for _, fn := range listeners {
		fn(path, chord)
	}
}
