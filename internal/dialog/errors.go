package dialog

import "errors"

var (
	// ErrNotOpen is returned by operations that need an open dialog.
	ErrNotOpen = errors.New("dialog is not open")

	// ErrNotAccelField is returned when capture is requested on a text field.
	ErrNotAccelField = errors.New("field does not hold an accelerator")

	// ErrUnknownField is returned for keys the dialog does not show.
	ErrUnknownField = errors.New("unknown dialog field")
)
