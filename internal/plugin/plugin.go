package plugin

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/dialog"
	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/input/keymap"
	"github.com/dshills/stringmod/internal/transform"
)

const (
	// ActionGroupName names the action group and the accel path segment.
	ActionGroupName = "StringModPluginActions"

	// MenuName identifies the merged submenu.
	MenuName = "StringModifiers"

	// MenuLabel is the submenu title.
	MenuLabel = "String Modifiers"

	// MenuParent is the host menu the submenu goes into.
	MenuParent = "Tools"

	// ConfigAction is the name of the command opening the dialog.
	ConfigAction = "Config"
)

// actionSpec describes one transformation command.
type actionSpec struct {
	name    string
	label   string
	tooltip string
	action  transform.Action
	key     config.Key
}

var actionSpecs = []actionSpec{
	{"Braces", "Add curly braces", "Add enclosing curly braces to selected text", transform.ActionBraces, config.KeyAccelBraces},
	{"Brackets", "Add brackets", "Add enclosing brackets to selected text", transform.ActionBrackets, config.KeyAccelBrackets},
	{"Quotes", "Add quotes", "Add enclosing quotes to selected text", transform.ActionQuotes, config.KeyAccelQuotes},
	{"Custom", "Add custom encl.", "Add custom enclosing chars to selected text", transform.ActionCustom, config.KeyAccelCustom},
	{"Str2CharArray", "String to char array", "Modify selected text into array of characters", transform.ActionCharArray, config.KeyAccelStr2Array},
	{"Str2WordArray", "String to word array", "Modify selected text into an array of words", transform.ActionWordArray, config.KeyAccelStr2WArray},
}

// AccelPaths returns the accel path of every accelerator key.
func AccelPaths() map[config.Key]string {
	paths := make(map[config.Key]string, len(actionSpecs))
	for _, s := range actionSpecs {
		paths[s.key] = keymap.Path(ActionGroupName, s.name)
	}
	return paths
}

// ActionName returns the command name running a.
func ActionName(a transform.Action) (string, bool) {
	for _, s := range actionSpecs {
		if s.action == a {
			return s.name, true
		}
	}
	return "", false
}

// BuildMenu returns the String Modifiers submenu.
func BuildMenu() Menu {
	return Menu{
		Name:   MenuName,
		Label:  MenuLabel,
		Parent: MenuParent,
		Items: []MenuItem{
			{Action: "Braces"},
			{Action: "Brackets"},
			{Action: "Quotes"},
			{Action: "Custom"},
			{Separator: true},
			{Action: "Str2CharArray"},
			{Action: "Str2WordArray"},
			{Separator: true},
			{Action: ConfigAction},
		},
	}
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the plugin's logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithNotifier sets where errors are shown. Without one, windows that
// implement Notifier are used.
func WithNotifier(n Notifier) Option {
	return func(p *Plugin) {
		p.notifier = n
	}
}

// WithAccelMap shares an existing accelerator map with the host.
func WithAccelMap(m *keymap.AccelMap) Option {
	return func(p *Plugin) {
		if m != nil {
			p.accels = m
		}
	}
}

// WithOverrides registers fn to adjust every configuration the plugin
// loads or receives from the dialog. Overrides are never persisted.
func WithOverrides(fn func(*config.Config) error) Option {
	return func(p *Plugin) {
		p.overrides = fn
	}
}

// windowHelper is the per-window state of an activation.
type windowHelper struct {
	group   *ActionGroup
	mergeID string
	state   State
}

// Plugin is the String Modifiers extension. All windows share one
// configuration and one accelerator map.
type Plugin struct {
	mu sync.Mutex

	store     *config.Store
	accels    *keymap.AccelMap
	notifier  Notifier
	logger    *zap.Logger
	overrides func(*config.Config) error

	cfg     *config.Config
	windows map[Window]*windowHelper
}

// New creates a plugin reading its configuration from store.
func New(store *config.Store, opts ...Option) *Plugin {
	p := &Plugin{
		store:   store,
		accels:  keymap.NewAccelMap(),
		logger:  zap.NewNop(),
		windows: make(map[Window]*windowHelper),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.accels.OnChange(p.accelChanged)
	return p
}

// Activate installs the action group and menu in w.
func (p *Plugin) Activate(w Window) error {
	if w == nil {
		return &OperationError{Op: "activate", Err: ErrNilWindow}
	}

	p.mu.Lock()
	if _, ok := p.windows[w]; ok {
		p.mu.Unlock()
		return &OperationError{Op: "activate", Err: ErrAlreadyActive}
	}
	h := &windowHelper{state: StateActivating}
	p.windows[w] = h
	needConfig := p.cfg == nil
	p.mu.Unlock()

	if needConfig {
		p.loadInitialConfig(w)
	}

	group := p.buildGroup()
	p.mu.Lock()
	h.group = group
	p.mu.Unlock()

	ui := w.UIManager()
	ui.InsertActionGroup(group)
	mergeID := ui.AddMenu(BuildMenu())
	ui.EnsureUpdate()

	p.mu.Lock()
	h.mergeID = mergeID
	h.state = StateActive
	p.mu.Unlock()

	p.UpdateUI(w)
	p.logger.Info("plugin activated", zap.String("group", ActionGroupName), zap.String("merge_id", mergeID))
	return nil
}

// Deactivate removes the menu and action group from w and forgets it.
func (p *Plugin) Deactivate(w Window) error {
	p.mu.Lock()
	h, ok := p.windows[w]
	if !ok || h.state != StateActive {
		p.mu.Unlock()
		return &OperationError{Op: "deactivate", Err: ErrNotActive}
	}
	h.state = StateDeactivating
	p.mu.Unlock()

	ui := w.UIManager()
	ui.RemoveMenu(h.mergeID)
	ui.RemoveActionGroup(h.group)
	ui.EnsureUpdate()

	p.mu.Lock()
	delete(p.windows, w)
	p.mu.Unlock()

	p.logger.Info("plugin deactivated", zap.String("merge_id", h.mergeID))
	return nil
}

// UpdateUI enables the action group while w has an active document.
func (p *Plugin) UpdateUI(w Window) {
	h := p.helper(w)
	if h == nil || h.group == nil {
		return
	}
	h.group.SetSensitive(w.ActiveDocument() != nil)
}

// State returns the lifecycle state of the plugin in w.
func (p *Plugin) State(w Window) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.windows[w]; ok {
		return h.state
	}
	return StateInactive
}

// Group returns the action group installed in w.
func (p *Plugin) Group(w Window) (*ActionGroup, bool) {
	h := p.helper(w)
	if h == nil || h.group == nil {
		return nil, false
	}
	return h.group, true
}

// Config returns a copy of the current configuration.
func (p *Plugin) Config() *config.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cfg == nil {
		return config.Default()
	}
	return p.cfg.Clone()
}

// Accels returns the accelerator map.
func (p *Plugin) Accels() *keymap.AccelMap {
	return p.accels
}

// Run applies action to the selection of w's active document. The
// replacement is one user action and ends up selected.
func (p *Plugin) Run(w Window, action transform.Action) error {
	doc := w.ActiveDocument()
	if doc == nil || !doc.HasSelection() {
		return nil
	}

	start, end := doc.SelectionBounds()
	if start > end {
		start, end = end, start
	}
	text := doc.Text(start, end)

	out, ok, err := transform.Apply(action, text, p.Config().Options())
	if err != nil {
		return &OperationError{Op: "run", Action: action.String(), Err: err}
	}
	if !ok {
		return nil
	}

	doc.BeginUserAction()
	doc.Delete(start, end)
	doc.Insert(start, out)
	doc.Select(start, start+utf8.RuneCountInString(out))
	doc.EndUserAction()

	p.logger.Debug("selection replaced",
		zap.Stringer("action", action),
		zap.Int("start", start),
		zap.Int("old_len", end-start),
		zap.Int("new_len", utf8.RuneCountInString(out)))
	return nil
}

// Configure opens the configuration dialog for w. Windows implementing
// DialogPresenter are asked to show it. Confirming the dialog updates the
// shared configuration and the accelerators.
func (p *Plugin) Configure(w Window) (*dialog.Dialog, error) {
	opts := []dialog.Option{
		dialog.WithLogger(p.logger.Named("dialog")),
		dialog.WithOnConfirm(p.setConfig),
	}
	if n := p.notifierFor(w); n != nil {
		opts = append(opts, dialog.WithNotifier(n))
	}

	d := dialog.New(p.store, p.accels, AccelPaths(), opts...)
	if err := d.Open(); err != nil {
		p.notify(w, err.Error())
		return nil, &OperationError{Op: "configure", Err: err}
	}
	if presenter, ok := w.(DialogPresenter); ok {
		presenter.PresentDialog(d)
	}
	return d, nil
}

// ReloadConfig re-reads the configuration file. On error the previous
// configuration stays in effect.
func (p *Plugin) ReloadConfig() error {
	cfg, _, err := p.store.Load()
	if err != nil {
		p.logger.Warn("config reload failed, keeping previous configuration", zap.Error(err))
		return fmt.Errorf("reloading config: %w", err)
	}
	if err := dialog.ApplyAccels(p.accels, AccelPaths(), cfg); err != nil {
		p.logger.Warn("some accelerators were not bound", zap.Error(err))
	}
	p.setConfig(cfg)
	p.logger.Info("config reloaded", zap.String("path", p.store.Path()))
	return nil
}

// HandleChord runs the command bound to c in w. It reports whether the
// chord belonged to this plugin.
func (p *Plugin) HandleChord(w Window, c key.Chord) (bool, error) {
	path, ok := p.accels.Resolve(c)
	if !ok {
		return false, nil
	}
	group, action, err := keymap.SplitPath(path)
	if err != nil || group != ActionGroupName {
		return false, nil
	}
	h := p.helper(w)
	if h == nil || h.group == nil || !h.group.Sensitive() {
		return false, nil
	}
	return true, h.group.Activate(action, w)
}

// loadInitialConfig loads the configuration on first activation. A broken
// file leaves the defaults in effect and is reported to the user.
func (p *Plugin) loadInitialConfig(w Window) {
	cfg, created, err := p.store.Load()
	if err != nil {
		p.logger.Error("config load failed, using defaults", zap.Error(err))
		p.notify(w, fmt.Sprintf("%s: %v", MenuLabel, err))
		cfg = config.Default()
	} else if created {
		p.logger.Info("first run, default config written", zap.String("path", p.store.Path()))
	}

	if err := dialog.ApplyAccels(p.accels, AccelPaths(), cfg); err != nil {
		p.logger.Warn("some accelerators were not bound", zap.Error(err))
	}
	p.setConfig(cfg)
}

// setConfig installs cfg as the shared configuration after applying
// overrides. Accelerator labels follow the accel map through accelChanged.
func (p *Plugin) setConfig(cfg *config.Config) {
	if p.overrides != nil {
		next := cfg.Clone()
		if err := p.overrides(next); err != nil {
			p.logger.Warn("ignoring config overrides", zap.Error(err))
		} else {
			cfg = next
		}
	}

	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
}

// accelChanged refreshes the label of the changed action in every window.
func (p *Plugin) accelChanged(path string, c key.Chord) {
	group, action, err := keymap.SplitPath(path)
	if err != nil || group != ActionGroupName {
		return
	}

	p.mu.Lock()
	groups := make(map[Window]*ActionGroup, len(p.windows))
	for w, h := range p.windows {
		if h.group != nil {
			groups[w] = h.group
		}
	}
	p.mu.Unlock()

	for w, g := range groups {
		g.SetAccel(action, c.Name())
		w.UIManager().EnsureUpdate()
	}
}

// buildGroup creates the commands of one window.
func (p *Plugin) buildGroup() *ActionGroup {
	g := NewActionGroup(ActionGroupName)
	for _, s := range actionSpecs {
		action := s.action
		g.Add(&Command{
			Name:    s.name,
			Label:   s.label,
			Tooltip: s.tooltip,
			Accel:   p.accelName(s.name),
			Run: func(w Window) error {
				return p.Run(w, action)
			},
		})
	}
	g.Add(&Command{
		Name:    ConfigAction,
		Label:   "Configure...",
		Tooltip: "Configure String Modifiers",
		Run: func(w Window) error {
			_, err := p.Configure(w)
			return err
		},
	})
	return g
}

// accelName returns the accelerator currently bound to action name.
func (p *Plugin) accelName(name string) string {
	c, ok := p.accels.Lookup(keymap.Path(ActionGroupName, name))
	if !ok {
		return ""
	}
	return c.Name()
}

func (p *Plugin) helper(w Window) *windowHelper {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.windows[w]
}

func (p *Plugin) notifierFor(w Window) Notifier {
	if p.notifier != nil {
		return p.notifier
	}
	if n, ok := w.(Notifier); ok {
		return n
	}
	return nil
}

func (p *Plugin) notify(w Window, message string) {
	if n := p.notifierFor(w); n != nil {
		n.Error(message)
	}
}
