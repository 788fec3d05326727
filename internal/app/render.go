package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/stringmod/internal/dialog"
	"github.com/dshills/stringmod/internal/renderer/backend"
)

const (
	tabWidth  = 4
	menuTitle = "F10 Tools"
)

// textHeight is the number of document rows between the title and status
// lines.
func (a *Application) textHeight() int {
	_, h := a.backend.Size()
	if h < 3 {
		return 1
	}
	return h - 2
}

// render draws one frame.
func (a *Application) render() {
	b := a.backend
	b.Clear()
	b.HideCursor()

	width, height := b.Size()
	if width <= 0 || height <= 0 {
		b.Show()
		return
	}
	w := a.window

	a.drawTitle(width)
	cx, cy, cursor := a.drawDocument(width)
	a.drawStatus(width, height)

	switch {
	case w.dialog != nil:
		cx, cy, cursor = a.drawDialog(width, height)
	case w.menu != nil:
		a.drawMenu()
		cursor = false
	}
	if msg, ok := w.Message(); ok {
		a.drawMessage(msg, width, height)
		cursor = false
	}

	if cursor {
		b.ShowCursor(cx, cy)
	}
	b.Show()
}

func (a *Application) drawTitle(width int) {
	name := "(no document)"
	if doc := a.window.doc; doc != nil {
		name = doc.Name
		if doc.IsModified() {
			name += " [+]"
		}
	}
	a.fill(0, 0, width, backend.StyleReverse)
	a.backend.DrawText(1, 0, name, backend.StyleReverse)
	a.backend.DrawText(width-runewidth.StringWidth(menuTitle)-1, 0, menuTitle, backend.StyleReverse)
}

func (a *Application) drawStatus(width, height int) {
	status := a.window.Status()
	if status == "" {
		status = "Ctrl+S save  Ctrl+Z undo  Ctrl+Q quit"
	}
	a.backend.DrawText(0, height-1, runewidth.Truncate(status, width, ""), backend.StyleDim)
}

// drawDocument draws the visible lines and returns the cursor cell.
func (a *Application) drawDocument(width int) (cx, cy int, ok bool) {
	doc := a.window.doc
	if doc == nil {
		return 0, 0, false
	}
	rows := a.textHeight()

	line, _ := doc.Position(doc.Cursor())
	if line < a.scroll {
		a.scroll = line
	}
	if line >= a.scroll+rows {
		a.scroll = line - rows + 1
	}

	selStart, selEnd := doc.SelectionBounds()
	offset := doc.Offset(a.scroll, 0)
	for row := 0; row < rows; row++ {
		y := row + 1
		x := 0
		for {
			if offset == doc.Cursor() {
				cx, cy, ok = x, y, x < width
			}
			if offset >= doc.Len() {
				return cx, cy, ok
			}
			r := doc.text[offset]
			offset++
			if r == '\n' {
				break
			}
			style := backend.StyleDefault
			if offset-1 >= selStart && offset-1 < selEnd {
				style = backend.StyleSelected
			}
			if r == '\t' {
				next := (x/tabWidth + 1) * tabWidth
				for ; x < next; x++ {
					a.backend.SetCell(x, y, ' ', style)
				}
				continue
			}
			a.backend.SetCell(x, y, r, style)
			x += runewidth.RuneWidth(r)
		}
	}
	return cx, cy, ok
}

func (a *Application) drawMenu() {
	entries := menuEntries(a.window.ui)
	labelW, accelW := 0, 0
	for _, e := range entries {
		labelW = max(labelW, runewidth.StringWidth(e.label))
		accelW = max(accelW, runewidth.StringWidth(e.accel))
	}
	boxW := labelW + accelW + 4

	for i, e := range entries {
		y := i + 1
		style := backend.StyleDefault
		switch {
		case e.header:
			style = backend.StyleBold
		case i == a.window.menu.selected:
			style = backend.StyleReverse
		case !e.sensitive && !e.separator:
			style = backend.StyleDim
		}
		a.fill(1, y, boxW, style)
		switch {
		case e.separator:
			a.backend.DrawText(1, y, strings.Repeat("-", boxW), backend.StyleDim)
		case e.header:
			a.backend.DrawText(2, y, e.label, style)
		default:
			a.backend.DrawText(3, y, e.label, style)
			a.backend.DrawText(boxW-runewidth.StringWidth(e.accel), y, e.accel, style)
		}
	}
}

// drawDialog draws the configuration dialog over the document area and
// returns the cursor cell of a focused text field.
func (a *Application) drawDialog(width, height int) (cx, cy int, ok bool) {
	v := a.window.dialog
	for y := 1; y < height-1; y++ {
		a.fill(0, y, width, backend.StyleDefault)
	}
	a.backend.DrawText(1, 1, "String Modifiers Configuration", backend.StyleBold)

	const valueX = 26
	y := 3
	i := 0
	for _, f := range v.d.Fields() {
		style := backend.StyleDefault
		if i == v.focus {
			style = backend.StyleReverse
		}
		a.backend.DrawText(2, y, f.Label+":", backend.StyleDefault)
		n := a.backend.DrawText(valueX, y, f.Text, style)
		if i == v.focus && !f.IsAccel() {
			cx, cy, ok = valueX+n, y, true
		}
		y++
		i++
	}
	y++
	for _, g := range v.d.Radios() {
		a.backend.DrawText(2, y, g.Label+":", backend.StyleDefault)
		x := valueX
		for j, opt := range g.Options {
			mark := "( )"
			if j == g.Selected {
				mark = "(*)"
			}
			style := backend.StyleDefault
			if i == v.focus && j == g.Selected {
				style = backend.StyleReverse
			}
			x += a.backend.DrawText(x, y, fmt.Sprintf("%s %s", mark, opt), style) + 2
		}
		y++
		i++
	}
	y++
	okStyle, cancelStyle := backend.StyleDefault, backend.StyleDefault
	if i == v.focus {
		okStyle = backend.StyleReverse
	}
	if i+1 == v.focus {
		cancelStyle = backend.StyleReverse
	}
	x := valueX
	x += a.backend.DrawText(x, y, "[ OK ]", okStyle) + 2
	a.backend.DrawText(x, y, "[ Cancel ]", cancelStyle)

	if _, capturing := v.d.Focused(); capturing {
		a.backend.DrawText(2, y+2, dialog.Prompt+", Backspace clears, Tab leaves", backend.StyleDim)
	}
	return cx, cy, ok
}

func (a *Application) drawMessage(msg string, width, height int) {
	boxW := min(width, max(runewidth.StringWidth(msg), len("Press any key"))+4)
	x := (width - boxW) / 2
	y := height/2 - 1
	for row := y; row < y+3; row++ {
		a.fill(x, row, boxW, backend.StyleReverse)
	}
	a.backend.DrawText(x+2, y, runewidth.Truncate(msg, boxW-2, ""), backend.StyleReverse)
	a.backend.DrawText(x+2, y+2, "Press any key", backend.StyleReverse)
}

func (a *Application) fill(x, y, n int, style backend.Style) {
	for i := 0; i < n; i++ {
		a.backend.SetCell(x+i, y, ' ', style)
	}
}
