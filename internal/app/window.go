package app

import (
	"github.com/dshills/stringmod/internal/dialog"
	"github.com/dshills/stringmod/internal/plugin"
)

// Window is the single terminal window. It shows one document, the merged
// menus, modal error messages and the configuration dialog.
type Window struct {
	doc      *Document
	ui       *UIManager
	messages []string
	dialog   *dialogView
	menu     *menuView
	status   string
}

// NewWindow creates a window showing doc. doc may be nil.
func NewWindow(doc *Document) *Window {
	return &Window{
		doc: doc,
		ui:  NewUIManager(),
	}
}

// ActiveDocument returns the shown document.
func (w *Window) ActiveDocument() plugin.Document {
	if w.doc == nil {
		return nil
	}
	return w.doc
}

// Document returns the concrete document.
func (w *Window) Document() *Document {
	return w.doc
}

// UIManager returns the window's UI manager.
func (w *Window) UIManager() plugin.UIManager {
	return w.ui
}

// Menus returns the concrete UI manager.
func (w *Window) Menus() *UIManager {
	return w.ui
}

// Error queues a modal error message.
func (w *Window) Error(message string) {
	w.messages = append(w.messages, message)
}

// Message returns the modal message currently shown.
func (w *Window) Message() (string, bool) {
	if len(w.messages) == 0 {
		return "", false
	}
	return w.messages[0], true
}

// DismissMessage closes the current modal message.
func (w *Window) DismissMessage() {
	if len(w.messages) > 0 {
		w.messages = w.messages[1:]
	}
}

// PresentDialog shows an opened configuration dialog.
func (w *Window) PresentDialog(d *dialog.Dialog) {
	w.menu = nil
	w.dialog = newDialogView(d)
}

// Dialog returns the dialog being shown.
func (w *Window) Dialog() (*dialog.Dialog, bool) {
	if w.dialog == nil {
		return nil, false
	}
	return w.dialog.d, true
}

// SetStatus sets the status line text.
func (w *Window) SetStatus(s string) {
	w.status = s
}

// Status returns the status line text.
func (w *Window) Status() string {
	return w.status
}
