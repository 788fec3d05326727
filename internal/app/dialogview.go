package app

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/stringmod/internal/dialog"
	"github.com/dshills/stringmod/internal/input/key"
)

// controlKind identifies the kind of a dialog control.
type controlKind int

const (
	controlField controlKind = iota
	controlRadio
	controlOK
	controlCancel
)

// dialogOutcome tells the event loop whether the dialog is still showing.
type dialogOutcome int

const (
	dialogOpen dialogOutcome = iota
	dialogConfirmed
	dialogCancelled
)

// dialogView drives a configuration dialog from key presses. Focus moves
// over the text fields, the radio groups and the two buttons.
type dialogView struct {
	d     *dialog.Dialog
	focus int
}

func newDialogView(d *dialog.Dialog) *dialogView {
	v := &dialogView{d: d, focus: -1}
	v.focusTo(0)
	return v
}

func (v *dialogView) controls() int {
	return len(v.d.Fields()) + len(v.d.Radios()) + 2
}

// control resolves a focus index into a control kind and the index within
// that kind.
func (v *dialogView) control(i int) (controlKind, int) {
	nf, nr := len(v.d.Fields()), len(v.d.Radios())
	switch {
	case i < nf:
		return controlField, i
	case i < nf+nr:
		return controlRadio, i - nf
	case i == nf+nr:
		return controlOK, 0
	default:
		return controlCancel, 0
	}
}

// focusTo moves focus to control i, starting capture on accelerator fields.
func (v *dialogView) focusTo(i int) {
	n := v.controls()
	i = (i%n + n) % n
	v.d.FocusOut()
	v.focus = i
	if kind, idx := v.control(i); kind == controlField {
		if f := v.d.Fields()[idx]; f.IsAccel() {
			_ = v.d.FocusIn(f.Key)
		}
	}
}

// handle processes a key press on the focused control.
func (v *dialogView) handle(c key.Chord) (dialogOutcome, error) {
	if c.Key == key.KeyTab {
		switch c.Modifiers {
		case key.ModNone:
			v.focusTo(v.focus + 1)
			return dialogOpen, nil
		case key.ModShift:
			v.focusTo(v.focus - 1)
			return dialogOpen, nil
		}
	}

	kind, idx := v.control(v.focus)
	plainEnter := c.Key == key.KeyEnter && c.Modifiers == key.ModNone

	switch kind {
	case controlField:
		f := v.d.Fields()[idx]
		if f.IsAccel() {
			if v.d.KeyPress(c) == dialog.KeyIgnored && plainEnter {
				return v.confirm()
			}
			return dialogOpen, nil
		}
		switch {
		case plainEnter:
			return v.confirm()
		case c.IsEscape():
			return v.cancel()
		case c.Key == key.KeyBackspace && c.Modifiers == key.ModNone:
			if _, size := utf8.DecodeLastRuneInString(f.Text); size > 0 {
				_ = v.d.SetText(f.Key, f.Text[:len(f.Text)-size])
			}
		case c.IsChar() && !c.IsModified():
			_ = v.d.SetText(f.Key, f.Text+string(typedRune(c)))
		}

	case controlRadio:
		g := v.d.Radios()[idx]
		switch {
		case c.Key == key.KeyLeft:
			_ = v.d.Select(g.Key, g.Selected-1)
		case c.Key == key.KeyRight:
			_ = v.d.Select(g.Key, g.Selected+1)
		case plainEnter:
			return v.confirm()
		case c.IsEscape():
			return v.cancel()
		}

	case controlOK:
		if plainEnter || c.Rune == ' ' {
			return v.confirm()
		}
		if c.IsEscape() {
			return v.cancel()
		}

	case controlCancel:
		if plainEnter || c.Rune == ' ' || c.IsEscape() {
			return v.cancel()
		}
	}
	return dialogOpen, nil
}

func (v *dialogView) confirm() (dialogOutcome, error) {
	if _, err := v.d.Confirm(); err != nil {
		// Confirm ends capture; resume it on the focused field.
		v.focusTo(v.focus)
		return dialogOpen, err
	}
	return dialogConfirmed, nil
}

func (v *dialogView) cancel() (dialogOutcome, error) {
	v.d.Cancel()
	return dialogCancelled, nil
}

// typedRune returns the character a rune chord types.
func typedRune(c key.Chord) rune {
	if c.Modifiers.HasShift() {
		return unicode.ToUpper(c.Rune)
	}
	return c.Rune
}
