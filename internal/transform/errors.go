package transform

import "errors"

var (
	// ErrChoiceOutOfRange is returned when a palette index is outside [0, len(Palette)).
	ErrChoiceOutOfRange = errors.New("delimiter choice out of range")

	// ErrUnknownAction is returned when an action name cannot be resolved.
	ErrUnknownAction = errors.New("unknown action")
)
