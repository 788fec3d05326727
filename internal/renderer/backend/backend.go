// Package backend provides the terminal abstraction used by the terminal
// host. Key presses arrive already converted to key.Chord values.
package backend

import "github.com/dshills/stringmod/internal/input/key"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Chord is set for EventKey.
	Chord key.Chord

	// Width and Height are set for EventResize.
	Width, Height int

	// Data carries the payload of EventInterrupt.
	Data any
}

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
	AttrUnderline
)

// Has returns true if the set contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Style describes how a cell is drawn.
type Style struct {
	Attrs Attr
}

// Common styles.
var (
	StyleDefault  = Style{}
	StyleBold     = Style{Attrs: AttrBold}
	StyleReverse  = Style{Attrs: AttrReverse}
	StyleDim      = Style{Attrs: AttrDim}
	StyleSelected = Style{Attrs: AttrReverse | AttrBold}
)

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init initializes the backend. Must be called before any other method.
	Init() error

	// Shutdown releases resources and restores the terminal.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the screen are ignored.
	SetCell(x, y int, r rune, style Style)

	// DrawText draws s starting at (x, y), clipped at the right edge, and
	// returns the number of columns used.
	DrawText(x, y int, s string, style Style) int

	// Clear clears the entire screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event. It returns an event
	// of type EventNone after Shutdown.
	PollEvent() Event

	// PostEvent queues a synthetic event. It fails when the queue is full.
	PostEvent(ev Event) error

	// Beep produces an audible or visual bell.
	Beep()
}
