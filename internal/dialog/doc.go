// Package dialog implements the String Modifiers configuration dialog as a
// toolkit-independent model.
//
// A host renders the fields and forwards focus changes and key presses. The
// dialog owns the accelerator capture rules:
//
//   - Escape shows the prompt again and keeps waiting
//   - unmodified Delete or BackSpace clears the accelerator
//   - F1 through F12 are accepted with any modifiers
//   - printable keys are accepted only together with a modifier
//   - anything else is ignored
//
// A chord already bound to another action is rejected and reported through
// the Notifier. Confirm applies the accelerators to the accel map and writes
// the configuration file; Cancel discards every change.
package dialog
