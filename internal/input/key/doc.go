// Package key provides the key and chord types used for menu accelerators.
//
// This package defines:
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Chord: one key press together with its modifiers
//
// # Accelerator Names
//
// Chords are stored in the configuration file as accelerator names in the
// bracketed-modifier form used by desktop toolkits:
//
//	<Control>b
//	<Control><Shift>F5
//	<Alt>space
//
// The empty string is "no accelerator". Parse also accepts the
// "Ctrl+Shift+B" and Vim "<C-S-b>" notations so accelerators can be typed
// by hand on the command line.
package key
