package keymap

import "errors"

// ErrInvalidPath is returned for strings that are not accel paths.
var ErrInvalidPath = errors.New("invalid accel path")

// ConflictError reports a chord that is already bound to another path.
type ConflictError struct {
	Chord string
	Owner string
}

func (e *ConflictError) Error() string {
	return "shortcut " + e.Chord + " is already in use by " + e.Owner
}
