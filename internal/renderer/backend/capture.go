package backend

import (
	"context"
	"errors"

	"github.com/dshills/stringmod/internal/input/key"
)

// ErrClosed is returned when the backend stops delivering events.
var ErrClosed = errors.New("backend closed")

// ChordReader reads key presses from a backend one chord at a time, for
// accelerator capture.
type ChordReader struct {
	b Backend
}

// NewChordReader creates a reader over b.
func NewChordReader(b Backend) *ChordReader {
	return &ChordReader{b: b}
}

// CaptureNextChord blocks until the next key press and returns its chord.
// Other events are dropped. Cancelling ctx wakes a blocked read by posting
// an interrupt.
func (r *ChordReader) CaptureNextChord(ctx context.Context) (key.Chord, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = r.b.PostEvent(Event{Type: EventInterrupt})
	})
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return key.Chord{}, err
		}
		ev := r.b.PollEvent()
		switch ev.Type {
		case EventKey:
			return ev.Chord, nil
		case EventNone:
			return key.Chord{}, ErrClosed
		}
	}
}
