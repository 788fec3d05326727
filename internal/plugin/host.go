package plugin

import "github.com/dshills/stringmod/internal/dialog"

// Document is the text buffer of a host window. Offsets count runes.
type Document interface {
	HasSelection() bool
	SelectionBounds() (start, end int)
	Text(start, end int) string

	// BeginUserAction and EndUserAction group the edits between them
	// into one undoable step.
	BeginUserAction()
	EndUserAction()

	Delete(start, end int)
	Insert(at int, text string)
	Select(start, end int)
}

// Window is one top-level host window.
type Window interface {
	// ActiveDocument returns nil when the window shows no document.
	ActiveDocument() Document
	UIManager() UIManager
}

// UIManager installs action groups and menus in a window.
type UIManager interface {
	InsertActionGroup(g *ActionGroup)
	RemoveActionGroup(g *ActionGroup)

	// AddMenu merges m into the window's menus and returns an id for
	// RemoveMenu.
	AddMenu(m Menu) (mergeID string)
	RemoveMenu(mergeID string)

	EnsureUpdate()
}

// Notifier shows a modal error message.
type Notifier interface {
	Error(message string)
}

// DialogPresenter shows an opened configuration dialog. Windows that do
// not implement it leave the dialog to the caller of Configure.
type DialogPresenter interface {
	PresentDialog(d *dialog.Dialog)
}
