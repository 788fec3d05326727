package plugin

import (
	"fmt"

	"github.com/dshills/stringmod/internal/dialog"
)

// fakeDocument is a rune buffer recording the edit calls it receives.
type fakeDocument struct {
	text       []rune
	selStart   int
	selEnd     int
	userAction int
	calls      []string
}

func newFakeDocument(text string, start, end int) *fakeDocument {
	return &fakeDocument{text: []rune(text), selStart: start, selEnd: end}
}

func (d *fakeDocument) HasSelection() bool { return d.selStart != d.selEnd }

func (d *fakeDocument) SelectionBounds() (int, int) { return d.selStart, d.selEnd }

func (d *fakeDocument) Text(start, end int) string { return string(d.text[start:end]) }

func (d *fakeDocument) BeginUserAction() {
	d.userAction++
	d.calls = append(d.calls, "begin")
}

func (d *fakeDocument) EndUserAction() {
	d.userAction--
	d.calls = append(d.calls, "end")
}

func (d *fakeDocument) Delete(start, end int) {
	d.text = append(d.text[:start:start], d.text[end:]...)
	d.calls = append(d.calls, fmt.Sprintf("delete %d %d", start, end))
}

func (d *fakeDocument) Insert(at int, text string) {
	rest := append([]rune(text), d.text[at:]...)
	d.text = append(d.text[:at:at], rest...)
	d.calls = append(d.calls, fmt.Sprintf("insert %d %q", at, text))
}

func (d *fakeDocument) Select(start, end int) {
	d.selStart, d.selEnd = start, end
	d.calls = append(d.calls, fmt.Sprintf("select %d %d", start, end))
}

func (d *fakeDocument) String() string { return string(d.text) }

// fakeUI records installed groups and menus.
type fakeUI struct {
	groups  []*ActionGroup
	menus   map[string]Menu
	nextID  int
	updates int
}

func newFakeUI() *fakeUI {
	return &fakeUI{menus: make(map[string]Menu)}
}

func (u *fakeUI) InsertActionGroup(g *ActionGroup) {
	u.groups = append(u.groups, g)
}

func (u *fakeUI) RemoveActionGroup(g *ActionGroup) {
	for i, x := range u.groups {
		if x == g {
			u.groups = append(u.groups[:i], u.groups[i+1:]...)
			return
		}
	}
}

func (u *fakeUI) AddMenu(m Menu) string {
	u.nextID++
	id := fmt.Sprintf("merge-%d", u.nextID)
	u.menus[id] = m
	return id
}

func (u *fakeUI) RemoveMenu(id string) {
	delete(u.menus, id)
}

func (u *fakeUI) EnsureUpdate() {
	u.updates++
}

// fakeWindow is a window that also shows errors and dialogs.
type fakeWindow struct {
	doc     Document
	ui      *fakeUI
	errors  []string
	dialogs []*dialog.Dialog
}

func newFakeWindow(doc *fakeDocument) *fakeWindow {
	w := &fakeWindow{ui: newFakeUI()}
	if doc != nil {
		w.doc = doc
	}
	return w
}

func (w *fakeWindow) ActiveDocument() Document { return w.doc }

func (w *fakeWindow) UIManager() UIManager { return w.ui }

func (w *fakeWindow) Error(message string) {
	w.errors = append(w.errors, message)
}

func (w *fakeWindow) PresentDialog(d *dialog.Dialog) {
	w.dialogs = append(w.dialogs, d)
}
