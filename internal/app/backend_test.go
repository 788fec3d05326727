package app

import (
	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/renderer/backend"
)

// fakeBackend replays queued events and records drawn cells.
type fakeBackend struct {
	width, height int
	cells         map[[2]int]rune
	events        []backend.Event
	inited        bool
	shutdown      bool
	beeps         int
}

func newFakeBackend(events ...backend.Event) *fakeBackend {
	return &fakeBackend{width: 60, height: 20, cells: make(map[[2]int]rune), events: events}
}

func (b *fakeBackend) Init() error { b.inited = true; return nil }

func (b *fakeBackend) Shutdown() { b.shutdown = true }

func (b *fakeBackend) Size() (int, int) { return b.width, b.height }

func (b *fakeBackend) SetCell(x, y int, r rune, _ backend.Style) {
	if x >= 0 && y >= 0 && x < b.width && y < b.height {
		b.cells[[2]int{x, y}] = r
	}
}

func (b *fakeBackend) DrawText(x, y int, s string, style backend.Style) int {
	n := 0
	for _, r := range s {
		b.SetCell(x+n, y, r, style)
		n++
	}
	return n
}

func (b *fakeBackend) Clear() { b.cells = make(map[[2]int]rune) }

func (b *fakeBackend) Show() {}

func (b *fakeBackend) ShowCursor(int, int) {}

func (b *fakeBackend) HideCursor() {}

func (b *fakeBackend) PollEvent() backend.Event {
	if len(b.events) == 0 {
		return backend.Event{Type: backend.EventNone}
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev
}

func (b *fakeBackend) PostEvent(ev backend.Event) error {
	b.events = append(b.events, ev)
	return nil
}

func (b *fakeBackend) Beep() { b.beeps++ }

// row returns the text drawn on row y with trailing blanks trimmed.
func (b *fakeBackend) row(y int) string {
	out := make([]rune, 0, b.width)
	last := 0
	for x := 0; x < b.width; x++ {
		r, ok := b.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		out = append(out, r)
		if r != ' ' {
			last = x + 1
		}
	}
	return string(out[:last])
}

func keyEvent(spec string) backend.Event {
	return backend.Event{Type: backend.EventKey, Chord: key.MustParse(spec)}
}

func runeEvent(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Chord: key.NewRuneChord(r, key.ModNone)}
}
