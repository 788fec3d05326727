package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestCaptureNextChord(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 2)
	r := NewChordReader(term)

	if err := term.PostEvent(Event{Type: EventInterrupt, Data: "skipped"}); err != nil {
		t.Fatal(err)
	}
	screen.InjectKey(tcell.KeyF5, 0, tcell.ModShift)

	c, err := r.CaptureNextChord(context.Background())
	if err != nil {
		t.Fatalf("CaptureNextChord() error = %v", err)
	}
	if c.Name() != "<Shift>F5" {
		t.Errorf("chord = %q, want <Shift>F5", c.Name())
	}
}

func TestCaptureNextChordCancelled(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 2)
	r := NewChordReader(term)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.CaptureNextChord(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("CaptureNextChord(cancelled) error = %v, want context.Canceled", err)
	}

	ctx, cancel = context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.CaptureNextChord(ctx)
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("blocked read was not woken by cancellation")
	}
}

func TestCaptureNextChordClosed(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	term.Shutdown()

	if _, err := NewChordReader(term).CaptureNextChord(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("error = %v, want ErrClosed", err)
	}
}
