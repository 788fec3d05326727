package backend

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/stringmod/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:    key.KeyEscape,
	tcell.KeyEnter:     key.KeyEnter,
	tcell.KeyTab:       key.KeyTab,
	tcell.KeyBacktab:   key.KeyTab,
	tcell.KeyBackspace: key.KeyBackspace,
	tcell.KeyDEL:       key.KeyBackspace,
	tcell.KeyDelete:    key.KeyDelete,
	tcell.KeyInsert:    key.KeyInsert,
	tcell.KeyHome:      key.KeyHome,
	tcell.KeyEnd:       key.KeyEnd,
	tcell.KeyPgUp:      key.KeyPageUp,
	tcell.KeyPgDn:      key.KeyPageDown,
	tcell.KeyUp:        key.KeyUp,
	tcell.KeyDown:      key.KeyDown,
	tcell.KeyLeft:      key.KeyLeft,
	tcell.KeyRight:     key.KeyRight,
	tcell.KeyF1:        key.KeyF1,
	tcell.KeyF2:        key.KeyF2,
	tcell.KeyF3:        key.KeyF3,
	tcell.KeyF4:        key.KeyF4,
	tcell.KeyF5:        key.KeyF5,
	tcell.KeyF6:        key.KeyF6,
	tcell.KeyF7:        key.KeyF7,
	tcell.KeyF8:        key.KeyF8,
	tcell.KeyF9:        key.KeyF9,
	tcell.KeyF10:       key.KeyF10,
	tcell.KeyF11:       key.KeyF11,
	tcell.KeyF12:       key.KeyF12,
}

var tcellKeys = func() map[key.Key]tcell.Key {
	m := make(map[key.Key]tcell.Key, len(specialKeys))
	for tk, k := range specialKeys {
		if tk == tcell.KeyDEL || tk == tcell.KeyBacktab {
			continue
		}
		m[k] = tk
	}
	return m
}()

// ConvertKey converts a tcell key event to a chord. Unknown keys yield the
// zero chord.
func ConvertKey(ev *tcell.EventKey) key.Chord {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyBacktab {
		mods = mods.With(key.ModShift)
	}
	if sk, ok := specialKeys[k]; ok {
		return key.NewSpecialChord(sk, mods)
	}

	r := ev.Rune()
	switch {
	case k == tcell.KeyRune:
		return key.NewRuneChord(r, mods)
	case mods.HasCtrl() && unicode.IsPrint(r):
		// Control keys report the lower case letter with ModCtrl.
		return key.NewRuneChord(unicode.ToLower(r), mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneChord(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl))
	}
	return key.Chord{}
}

// ToTcellKey converts a chord into a tcell key event. It returns false for
// the zero chord.
func ToTcellKey(c key.Chord) (*tcell.EventKey, bool) {
	mods := convertToTcellMod(c.Modifiers)
	if c.IsRune() {
		return tcell.NewEventKey(tcell.KeyRune, c.Rune, mods), true
	}
	if tk, ok := tcellKeys[c.Key]; ok {
		return tcell.NewEventKey(tk, 0, mods), true
	}
	return nil, false
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertToTcellMod converts a modifier set to a tcell mask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.HasShift() {
		result |= tcell.ModShift
	}
	if m.HasCtrl() {
		result |= tcell.ModCtrl
	}
	if m.HasAlt() {
		result |= tcell.ModAlt
	}
	if m.HasMeta() {
		result |= tcell.ModMeta
	}
	return result
}
