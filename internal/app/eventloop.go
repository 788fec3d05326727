package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/renderer/backend"
)

// handleEvent processes a single backend event.
func (a *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return a.handleKey(ev.Chord)

	case backend.EventResize:
		a.logger.Debug("terminal resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		return nil

	case backend.EventInterrupt:
		switch ev.Data.(type) {
		case quitRequest:
			return ErrQuit
		case reloadRequest:
			if err := a.plugin.ReloadConfig(); err != nil {
				a.window.SetStatus(err.Error())
				return nil
			}
			a.window.SetStatus("Configuration reloaded")
		}
		return nil
	}
	return nil
}

// handleKey routes a key press to the topmost surface: the modal message,
// the dialog, the menu, the plugin's accelerators and finally the editor.
func (a *Application) handleKey(c key.Chord) error {
	w := a.window

	if _, ok := w.Message(); ok {
		w.DismissMessage()
		return nil
	}

	if w.dialog != nil {
		outcome, err := w.dialog.handle(c)
		switch outcome {
		case dialogConfirmed:
			w.dialog = nil
			w.SetStatus("Configuration saved")
		case dialogCancelled:
			w.dialog = nil
			w.SetStatus("")
		}
		return err
	}

	if w.menu != nil {
		action, closed := w.menu.handle(w.ui, c)
		if closed {
			w.menu = nil
		}
		if action != "" {
			return activate(w, action)
		}
		return nil
	}

	if handled, err := a.plugin.HandleChord(w, c); handled {
		return err
	}

	return a.handleEditorKey(c)
}

// handleEditorKey applies editing and navigation keys to the document.
func (a *Application) handleEditorKey(c key.Chord) error {
	w := a.window

	if c.Key == key.KeyF10 && c.Modifiers == key.ModNone {
		w.menu = newMenuView(w.ui)
		return nil
	}
	if c.IsRune() && c.Modifiers == key.ModCtrl && c.Rune == 'q' {
		return ErrQuit
	}

	doc := w.doc
	if doc == nil {
		return nil
	}
	extend := c.Modifiers.HasShift()

	switch {
	case c.IsRune() && c.Modifiers == key.ModCtrl:
		switch c.Rune {
		case 's':
			if err := doc.Save(); err != nil {
				return err
			}
			w.SetStatus(fmt.Sprintf("Saved %s", doc.Name))
		case 'z':
			if !doc.Undo() {
				a.backend.Beep()
			}
		case 'a':
			doc.SelectAll()
		}

	case c.Key == key.KeyLeft:
		doc.MoveTo(doc.Cursor()-1, extend)
	case c.Key == key.KeyRight:
		doc.MoveTo(doc.Cursor()+1, extend)
	case c.Key == key.KeyUp:
		doc.MoveLines(-1, extend)
	case c.Key == key.KeyDown:
		doc.MoveLines(1, extend)
	case c.Key == key.KeyPageUp:
		doc.MoveLines(-a.textHeight(), extend)
	case c.Key == key.KeyPageDown:
		doc.MoveLines(a.textHeight(), extend)
	case c.Key == key.KeyHome:
		doc.MoveTo(doc.LineStart(doc.Cursor()), extend)
	case c.Key == key.KeyEnd:
		doc.MoveTo(doc.LineEnd(doc.Cursor()), extend)

	case c.Key == key.KeyEnter && c.Modifiers == key.ModNone:
		typeText(doc, "\n")
	case c.Key == key.KeyTab && c.Modifiers == key.ModNone:
		typeText(doc, "\t")
	case c.Key == key.KeyBackspace && c.Modifiers == key.ModNone:
		erase(doc, -1)
	case c.Key == key.KeyDelete && c.Modifiers == key.ModNone:
		erase(doc, 1)
	case c.IsChar() && !c.IsModified():
		typeText(doc, string(typedRune(c)))
	}
	return nil
}

// typeText replaces the selection, or inserts at the cursor, as one user
// action.
func typeText(doc *Document, text string) {
	start, end := doc.SelectionBounds()
	doc.BeginUserAction()
	doc.Delete(start, end)
	doc.Insert(start, text)
	doc.EndUserAction()
}

// erase deletes the selection, or one rune before (dir < 0) or after the
// cursor.
func erase(doc *Document, dir int) {
	start, end := doc.SelectionBounds()
	if start == end {
		if dir < 0 {
			start--
		} else {
			end++
		}
	}
	if start < 0 || end > doc.Len() || start == end {
		return
	}
	doc.BeginUserAction()
	doc.Delete(start, end)
	doc.ClearSelection()
	doc.EndUserAction()
}
