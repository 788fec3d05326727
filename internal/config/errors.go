package config

import (
	"errors"
	"fmt"
)

// Errors returned while reading a configuration file.
var (
	// ErrMissingSeparator indicates a line without '='.
	ErrMissingSeparator = errors.New("missing '=' separator")

	// ErrUnexpectedKey indicates a key other than the one expected at that line.
	ErrUnexpectedKey = errors.New("unexpected key")

	// ErrMissingKey indicates the file ended before all keys were read.
	ErrMissingKey = errors.New("missing key")

	// ErrExtraLine indicates content after the last key.
	ErrExtraLine = errors.New("extra line after last key")

	// ErrInvalidChoice indicates a palette index that is not an integer.
	ErrInvalidChoice = errors.New("palette choice is not an integer")
)

// Errors returned by key access and validation.
var (
	// ErrUnknownKey indicates a name that is not a configuration key.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrLineBreak indicates a value that would break the one-line-per-key format.
	ErrLineBreak = errors.New("value contains a line break")
)

// ParseError describes why a configuration file could not be read.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Line is the 1-based line number, 0 when not tied to a line.
	Line int
	// Key is the key expected at Line.
	Key string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d (%s): %v", e.Path, e.Line, e.Key, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a field that cannot be stored.
type ValidationError struct {
	Key Key
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
