package app

import (
	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/plugin"
)

// menuEntry is one row of the open menu.
type menuEntry struct {
	action    string
	label     string
	accel     string
	header    bool
	separator bool
	sensitive bool
}

func (e menuEntry) selectable() bool {
	return !e.header && !e.separator && e.sensitive
}

// menuEntries lays out the merged menus. Each submenu starts with a header
// row carrying its label.
func menuEntries(ui *UIManager) []menuEntry {
	var out []menuEntry
	for _, m := range ui.Menus() {
		out = append(out, menuEntry{label: m.Label, header: true})
		for _, it := range m.Items {
			if it.Separator {
				out = append(out, menuEntry{separator: true})
				continue
			}
			g, c, ok := ui.Command(it.Action)
			if !ok {
				continue
			}
			out = append(out, menuEntry{
				action:    c.Name,
				label:     c.Label,
				accel:     c.Accel,
				sensitive: g.Sensitive(),
			})
		}
	}
	return out
}

// menuView is the open Tools menu.
type menuView struct {
	selected int
}

func newMenuView(ui *UIManager) *menuView {
	v := &menuView{selected: -1}
	v.move(menuEntries(ui), 1)
	return v
}

// move selects the next selectable entry in direction dir, wrapping.
func (v *menuView) move(entries []menuEntry, dir int) {
	n := len(entries)
	if n == 0 {
		v.selected = -1
		return
	}
	i := v.selected
	for range entries {
		i = (i + dir + n) % n
		if entries[i].selectable() {
			v.selected = i
			return
		}
	}
}

// handle processes a key press. It returns the action to run, if any, and
// whether the menu closed.
func (v *menuView) handle(ui *UIManager, c key.Chord) (action string, closed bool) {
	entries := menuEntries(ui)
	switch {
	case c.Key == key.KeyUp:
		v.move(entries, -1)
	case c.Key == key.KeyDown:
		v.move(entries, 1)
	case c.Key == key.KeyEnter:
		if v.selected >= 0 && v.selected < len(entries) && entries[v.selected].selectable() {
			return entries[v.selected].action, true
		}
		return "", true
	case c.IsEscape(), c.Key == key.KeyF10:
		return "", true
	}
	return "", false
}

// activate runs action from the menu of w.
func activate(w *Window, action string) error {
	g, _, ok := w.ui.Command(action)
	if !ok {
		return plugin.ErrUnknownCommand
	}
	return g.Activate(action, w)
}
