// Package keymap holds the accelerator map: the table from accel paths to
// the key chords that trigger them.
//
// An accel path names one action inside an action group:
//
//	<Actions>/StringModPluginActions/Braces
//
// The map keeps the reverse index as well, so a host can resolve a key press
// to the action it triggers and the configuration dialog can detect that a
// chord is already in use.
//
// # Usage
//
//	m := keymap.NewAccelMap()
//	m.AddEntry(keymap.Path("StringModPluginActions", "Braces"), key.MustParse("<Control>b"))
//
//	// Fails when another path already owns the chord
//	if !m.ChangeEntry(path, chord, false) {
//	    // report the conflict
//	}
//
//	if path, ok := m.Resolve(chord); ok {
//	    // run the action behind path
//	}
package keymap
