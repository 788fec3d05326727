// Package watcher watches the configuration file for live reload.
//
// The watcher monitors the file's directory with fsnotify, so editors that
// save by writing a temporary file and renaming it over the original are
// seen as well. Bursts of events are coalesced and delivered to handlers
// once the file has been quiet for the debounce interval.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrRunning is returned by Start on a watcher that is already running.
var ErrRunning = errors.New("watcher already running")

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the last coalesced change was seen.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates the file was created or renamed into place.
	OpCreate

	// OpRemove indicates the file was deleted or renamed away.
	OpRemove
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected. Handlers run on the
// watcher goroutine and must not block for long.
type Handler func(event Event)

// Watcher monitors one file for changes.
type Watcher struct {
	mu sync.RWMutex

	path     string
	handlers []Handler
	debounce time.Duration
	logger   *zap.Logger

	fsw     *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before an event is
// delivered. Zero delivers every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the watcher's logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for path. The file does not need to exist yet.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins watching. The file's directory must exist.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrRunning
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	w.running = true

	w.wg.Add(1)
	go w.loop(fsw, w.done)

	w.logger.Debug("config watcher started", zap.String("path", w.path))
	return nil
}

// Stop stops watching and waits for the watcher goroutine to exit.
// Pending debounced events are dropped.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.done)
	fsw := w.fsw
	w.fsw = nil
	w.mu.Unlock()

	w.wg.Wait()
	w.logger.Debug("config watcher stopped", zap.String("path", w.path))
	return fsw.Close()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// loop receives fsnotify events until done is closed.
func (w *Watcher) loop(fsw *fsnotify.Watcher, done <-chan struct{}) {
	defer w.wg.Done()

	var (
		pending *Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-done:
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			op, relevant := w.convert(ev)
			if !relevant {
				continue
			}
			event := Event{Path: w.path, Op: op, Time: time.Now()}
			if w.debounce == 0 {
				w.emitEvent(event)
				continue
			}
			pending = coalesce(pending, event)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending != nil {
				w.emitEvent(*pending)
				pending = nil
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

// convert maps an fsnotify event on the watched file to an Operation.
// Events for other files in the directory and chmod-only events are
// not relevant.
func (w *Watcher) convert(ev fsnotify.Event) (Operation, bool) {
	if filepath.Clean(ev.Name) != w.path {
		return 0, false
	}
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return OpRemove, true
	case ev.Has(fsnotify.Create):
		return OpCreate, true
	case ev.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}

// coalesce merges a new event into the pending one:
//   - a remove followed by a create is a write (save by rename)
//   - create followed by write stays create
//   - anything followed by remove is remove
func coalesce(pending *Event, next Event) *Event {
	if pending == nil {
		return &next
	}

	op := next.Op
	switch {
	case pending.Op == OpRemove && next.Op == OpCreate:
		op = OpWrite
	case pending.Op == OpCreate && next.Op == OpWrite:
		op = OpCreate
	}
	return &Event{Path: next.Path, Op: op, Time: next.Time}
}

// emitEvent calls all handlers with the event.
func (w *Watcher) emitEvent(event Event) {
	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	w.logger.Debug("config file changed",
		zap.String("path", event.Path),
		zap.Stringer("op", event.Op))

	for _, handler := range handlers {
		w.safeCallHandler(handler, event)
	}
}

// safeCallHandler calls a handler with panic recovery so a failing handler
// does not stop the watcher goroutine.
func (w *Watcher) safeCallHandler(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("config watcher handler panicked", zap.Any("panic", r))
		}
	}()
	handler(event)
}
