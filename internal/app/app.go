// Package app is the terminal host for the String Modifiers plugin. It
// shows one document, merges the plugin's menu and accelerators into its
// window, and runs the configuration dialog full screen.
package app

import (
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/config/watcher"
	"github.com/dshills/stringmod/internal/plugin"
	"github.com/dshills/stringmod/internal/renderer/backend"
)

// reloadRequest is posted by the config watcher to reload on the event loop.
type reloadRequest struct{}

// quitRequest is posted by Quit.
type quitRequest struct{}

// Options configures the application.
type Options struct {
	// Store is the configuration store shared with the plugin.
	Store *config.Store

	// Logger receives all log output. Defaults to a no-op logger.
	Logger *zap.Logger

	// Overrides adjust the loaded configuration without being saved.
	Overrides func(*config.Config) error

	// Watch reloads the configuration when the file changes on disk.
	Watch bool

	// WatchDebounce coalesces bursts of file events.
	WatchDebounce time.Duration
}

// Application runs the terminal host.
type Application struct {
	backend backend.Backend
	window  *Window
	plugin  *plugin.Plugin
	store   *config.Store
	logger  *zap.Logger
	watcher *watcher.Watcher
	opts    Options

	scroll  int
	running atomic.Bool
}

// New creates an application showing doc.
func New(doc *Document, opts Options) *Application {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Store == nil {
		opts.Store = config.NewStore(config.DefaultPath(), config.WithLogger(opts.Logger.Named("config")))
	}

	pluginOpts := []plugin.Option{plugin.WithLogger(opts.Logger.Named("plugin"))}
	if opts.Overrides != nil {
		pluginOpts = append(pluginOpts, plugin.WithOverrides(opts.Overrides))
	}

	return &Application{
		window: NewWindow(doc),
		plugin: plugin.New(opts.Store, pluginOpts...),
		store:  opts.Store,
		logger: opts.Logger,
		opts:   opts,
	}
}

// SetBackend sets the rendering backend. Must be called before Run.
func (a *Application) SetBackend(b backend.Backend) {
	a.backend = b
}

// Window returns the application window.
func (a *Application) Window() *Window {
	return a.window
}

// Plugin returns the String Modifiers plugin.
func (a *Application) Plugin() *plugin.Plugin {
	return a.plugin
}

// IsRunning returns true if the event loop is running.
func (a *Application) IsRunning() bool {
	return a.running.Load()
}

// Run initializes the backend, activates the plugin and processes events
// until the user quits.
func (a *Application) Run() error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()

	if err := a.plugin.Activate(a.window); err != nil {
		return &InitError{Component: "plugin", Err: err}
	}
	defer func() {
		if err := a.plugin.Deactivate(a.window); err != nil {
			a.logger.Warn("plugin deactivation failed", zap.Error(err))
		}
	}()

	if a.opts.Watch {
		a.startWatcher()
		defer a.stopWatcher()
	}

	a.logger.Info("application started", zap.String("config", a.store.Path()))
	return a.eventLoop()
}

// Quit asks the event loop to exit.
func (a *Application) Quit() error {
	if a.backend == nil {
		return ErrNoBackend
	}
	return a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
}

func (a *Application) eventLoop() error {
	for {
		a.render()

		ev := a.backend.PollEvent()
		if ev.Type == backend.EventNone {
			return nil
		}
		err := a.handleEvent(ev)
		if errors.Is(err, ErrQuit) {
			a.logger.Info("application stopped")
			return nil
		}
		if err != nil {
			a.logger.Warn("event handling failed", zap.Error(err))
			a.window.Error(err.Error())
		}
	}
}

// startWatcher reloads the configuration on file changes. The reload is
// posted to the event loop so the plugin is only touched from one
// goroutine. Watch failures are logged and leave the application running.
func (a *Application) startWatcher() {
	var opts []watcher.Option
	opts = append(opts, watcher.WithLogger(a.logger.Named("watcher")))
	if a.opts.WatchDebounce > 0 {
		opts = append(opts, watcher.WithDebounce(a.opts.WatchDebounce))
	}

	w, err := watcher.New(a.store.Path(), opts...)
	if err != nil {
		a.logger.Warn("config watcher unavailable", zap.Error(err))
		return
	}
	w.OnChange(func(ev watcher.Event) {
		a.logger.Debug("config file changed", zap.Stringer("op", ev.Op))
		if err := a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{}}); err != nil {
			a.logger.Warn("dropping config reload", zap.Error(err))
		}
	})
	if err := w.Start(); err != nil {
		a.logger.Warn("config watcher failed to start", zap.Error(err))
		return
	}
	a.watcher = w
}

func (a *Application) stopWatcher() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Stop(); err != nil {
		a.logger.Warn("stopping config watcher", zap.Error(err))
	}
	a.watcher = nil
}
