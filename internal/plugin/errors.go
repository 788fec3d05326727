package plugin

import (
	"errors"
	"fmt"
)

// Lifecycle errors.
var (
	// ErrNilWindow is returned when a nil window is passed to a lifecycle call.
	ErrNilWindow = errors.New("window is nil")

	// ErrAlreadyActive is returned when activating a window twice.
	ErrAlreadyActive = errors.New("plugin is already active in window")

	// ErrNotActive is returned for a window the plugin was never activated in.
	ErrNotActive = errors.New("plugin is not active in window")

	// ErrUnknownCommand is returned when activating a command the group lacks.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInsensitive is returned when activating a command of a disabled group.
	ErrInsensitive = errors.New("action group is insensitive")
)

// OperationError records a failed plugin operation.
type OperationError struct {
	Op     string
	Action string
	Err    error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Action, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}
