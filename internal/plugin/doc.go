// Package plugin implements the String Modifiers extension lifecycle.
//
// A host editor drives a Plugin through three callbacks per window:
//
//	Activate(w)   -> action group "StringModPluginActions" inserted, menu merged
//	UpdateUI(w)   -> group sensitive only while the window has a document
//	Deactivate(w) -> menu and group removed, window forgotten
//
// Every menu entry is a Command. The transformation commands read the
// selection of the window's active document, compute the replacement with
// package transform and write it back inside one user action, leaving the
// inserted text selected. Empty selections and windows without a document
// are silent no-ops.
//
// # Host Interfaces
//
// The host supplies Window, Document and UIManager. A Window may also
// implement Notifier to show modal errors and DialogPresenter to show the
// configuration dialog.
//
// # Accelerators
//
// Accelerators live in a keymap.AccelMap under the accel paths
//
//	<Actions>/StringModPluginActions/<ActionName>
//
// HandleChord resolves a key press through the map and runs the bound
// command.
package plugin
