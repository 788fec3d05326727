package dialog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/input/keymap"
	"github.com/dshills/stringmod/internal/transform"
)

// Prompt is shown in an accelerator field while it waits for a chord.
const Prompt = "Press new accel keys"

// Notifier shows a modal error message.
type Notifier interface {
	Error(message string)
}

// ChordCapturer delivers the next key press from the host.
type ChordCapturer interface {
	CaptureNextChord(ctx context.Context) (key.Chord, error)
}

// KeyResult tells the host what a key press did to the focused field.
type KeyResult int

const (
	// KeyIgnored means the key was not consumed.
	KeyIgnored KeyResult = iota
	// KeyWaiting means the prompt is shown again and capture continues.
	KeyWaiting
	// KeyAccepted means the chord became the field's accelerator.
	KeyAccepted
	// KeyCleared means the field's accelerator was removed.
	KeyCleared
	// KeyRejected means the chord is already in use.
	KeyRejected
)

// String returns the result name.
func (r KeyResult) String() string {
	switch r {
	case KeyIgnored:
		return "ignored"
	case KeyWaiting:
		return "waiting"
	case KeyAccepted:
		return "accepted"
	case KeyCleared:
		return "cleared"
	case KeyRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Field is one text entry of the dialog.
type Field struct {
	Key   config.Key
	Label string
	Text  string
}

// IsAccel reports whether the field holds an accelerator.
func (f Field) IsAccel() bool {
	return f.Key.IsAccel()
}

// RadioGroup is one palette choice of the dialog.
type RadioGroup struct {
	Key      config.Key
	Label    string
	Options  []string
	Selected int
}

// fieldLabels in configuration key order.
var fieldLabels = map[config.Key]string{
	config.KeyAccelBraces:     "Braces",
	config.KeyAccelBrackets:   "Brackets",
	config.KeyAccelQuotes:     "Quotes",
	config.KeyAccelCustom:     "Custom",
	config.KeyAccelStr2Array:  "Char array",
	config.KeyAccelStr2WArray: "Word array",
	config.KeyCustomStart:     "Custom start",
	config.KeyCustomEnd:       "Custom end",
	config.KeyRadioCharArray:  "Char array delimiters",
	config.KeyRadioWordArray:  "Word array delimiters",
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithLogger sets the dialog's logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dialog) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithNotifier sets where conflicts are reported.
func WithNotifier(n Notifier) Option {
	return func(d *Dialog) {
		d.notifier = n
	}
}

// WithOnConfirm registers fn to run after a successful Confirm.
func WithOnConfirm(fn func(*config.Config)) Option {
	return func(d *Dialog) {
		d.onConfirm = append(d.onConfirm, fn)
	}
}

// Dialog is the configuration dialog model. Each instance owns its fields.
type Dialog struct {
	store    *config.Store
	accels   *keymap.AccelMap
	paths    map[config.Key]string
	notifier Notifier
	logger   *zap.Logger

	onConfirm []func(*config.Config)

	fields []Field
	radios []RadioGroup
	open   bool

	// Capture state of the focused accelerator field.
	focus    int
	oldAccel string
	captured bool
}

// New creates a dialog editing the configuration in store. paths gives the
// accel path of each accelerator key.
func New(store *config.Store, accels *keymap.AccelMap, paths map[config.Key]string, opts ...Option) *Dialog {
	d := &Dialog{
		store:  store,
		accels: accels,
		paths:  paths,
		logger: zap.NewNop(),
		focus:  -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open loads the configuration, creating the file on first run, and fills
// the fields.
func (d *Dialog) Open() error {
	cfg, _, err := d.store.Load()
	if err != nil {
		return fmt.Errorf("opening config dialog: %w", err)
	}

	d.fields = d.fields[:0]
	d.radios = d.radios[:0]
	for _, k := range config.Keys() {
		v, _ := cfg.Get(k)
		if k.IsChoice() {
			g := RadioGroup{Key: k, Label: fieldLabels[k]}
			for _, p := range transform.Palette {
				g.Options = append(g.Options, p.String())
			}
			if k == config.KeyRadioCharArray {
				g.Selected = cfg.RadioCharArray
			} else {
				g.Selected = cfg.RadioWordArray
			}
			d.radios = append(d.radios, g)
			continue
		}
		d.fields = append(d.fields, Field{Key: k, Label: fieldLabels[k], Text: v})
	}

	d.focus = -1
	d.open = true
	d.logger.Debug("config dialog opened", zap.String("path", d.store.Path()))
	return nil
}

// IsOpen reports whether the dialog is showing.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// Fields returns a copy of the text fields in display order.
func (d *Dialog) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// Radios returns a copy of the radio groups.
func (d *Dialog) Radios() []RadioGroup {
	out := make([]RadioGroup, len(d.radios))
	for i, g := range d.radios {
		g.Options = append([]string(nil), g.Options...)
		out[i] = g
	}
	return out
}

// Text returns the current text of the field for k.
func (d *Dialog) Text(k config.Key) (string, error) {
	i, err := d.index(k)
	if err != nil {
		return "", err
	}
	return d.fields[i].Text, nil
}

// SetText replaces the text of a non-accelerator field.
func (d *Dialog) SetText(k config.Key, text string) error {
	i, err := d.index(k)
	if err != nil {
		return err
	}
	if d.fields[i].IsAccel() {
		return fmt.Errorf("%w: %s is set by key capture", ErrNotAccelField, k)
	}
	d.fields[i].Text = text
	return nil
}

// Select chooses option i of the radio group for k.
func (d *Dialog) Select(k config.Key, i int) error {
	if !d.open {
		return ErrNotOpen
	}
	if !transform.ValidChoice(i) {
		return fmt.Errorf("%w: %d", transform.ErrChoiceOutOfRange, i)
	}
	for j := range d.radios {
		if d.radios[j].Key == k {
			d.radios[j].Selected = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, k)
}

// FocusIn starts accelerator capture on the field for k. The old value is
// remembered and the prompt is shown.
func (d *Dialog) FocusIn(k config.Key) error {
	i, err := d.index(k)
	if err != nil {
		return err
	}
	if !d.fields[i].IsAccel() {
		return fmt.Errorf("%w: %s", ErrNotAccelField, k)
	}
	if d.focus >= 0 {
		d.FocusOut()
	}

	d.focus = i
	d.oldAccel = d.fields[i].Text
	d.captured = false
	d.fields[i].Text = Prompt
	return nil
}

// KeyPress handles a key press on the focused accelerator field.
func (d *Dialog) KeyPress(c key.Chord) KeyResult {
	if d.focus < 0 {
		return KeyIgnored
	}
	f := &d.fields[d.focus]

	switch {
	case c.IsEscape():
		f.Text = Prompt
		return KeyWaiting

	case c.IsErase():
		d.oldAccel = ""
		d.captured = false
		f.Text = ""
		return KeyCleared

	case c.IsFunctionKey(), c.IsChar() && c.IsModified():
		if !d.available(f.Key, c) {
			return KeyRejected
		}
		f.Text = c.Name()
		d.captured = true
		return KeyAccepted

	default:
		return KeyIgnored
	}
}

// FocusOut ends capture. Without a newly accepted chord the old text is
// restored.
func (d *Dialog) FocusOut() {
	if d.focus < 0 {
		return
	}
	if !d.captured {
		d.fields[d.focus].Text = d.oldAccel
	}
	d.focus = -1
	d.oldAccel = ""
	d.captured = false
}

// Focused returns the key of the field capturing an accelerator.
func (d *Dialog) Focused() (config.Key, bool) {
	if d.focus < 0 {
		return 0, false
	}
	return d.fields[d.focus].Key, true
}

// Capture runs a full capture on the field for k, reading chords from c
// until one is accepted, the field is cleared, or an unmodified Tab moves
// focus away.
func (d *Dialog) Capture(ctx context.Context, k config.Key, c ChordCapturer) (KeyResult, error) {
	if err := d.FocusIn(k); err != nil {
		return KeyIgnored, err
	}
	defer d.FocusOut()

	for {
		chord, err := c.CaptureNextChord(ctx)
		if err != nil {
			return KeyIgnored, err
		}
		if chord.Key == key.KeyTab && chord.Modifiers == key.ModNone {
			return KeyIgnored, nil
		}
		switch r := d.KeyPress(chord); r {
		case KeyAccepted, KeyCleared:
			return r, nil
		}
	}
}

// Confirm copies the fields into a new configuration, writes the file,
// binds its accelerators and closes the dialog. A failed write leaves the
// accelerator map untouched.
func (d *Dialog) Confirm() (*config.Config, error) {
	if !d.open {
		return nil, ErrNotOpen
	}
	d.FocusOut()

	cfg := config.Default()
	for _, f := range d.fields {
		if err := cfg.Set(f.Key, f.Text); err != nil {
			return nil, err
		}
	}
	for _, g := range d.radios {
		if err := cfg.Set(g.Key, fmt.Sprint(g.Selected)); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := d.store.Save(cfg); err != nil {
		return nil, err
	}
	if err := ApplyAccels(d.accels, d.paths, cfg); err != nil {
		d.logger.Warn("some accelerators were not bound", zap.Error(err))
	}

	d.open = false
	d.logger.Info("configuration saved", zap.String("path", d.store.Path()))
	for _, fn := range d.onConfirm {
		fn(cfg.Clone())
	}
	return cfg, nil
}

// Cancel closes the dialog without saving.
func (d *Dialog) Cancel() {
	d.FocusOut()
	d.open = false
	d.logger.Debug("config dialog cancelled")
}

// available reports whether c can be bound to the action of k, notifying
// the user when it cannot.
func (d *Dialog) available(k config.Key, c key.Chord) bool {
	name := c.Name()

	inUse := d.accels.Conflict(d.paths[k], c) != nil
	for _, f := range d.fields {
		if f.Key != k && f.IsAccel() && sameAccel(f.Text, name) {
			inUse = true
		}
	}
	if !inUse {
		return true
	}

	d.logger.Debug("accelerator in use", zap.String("accel", name), zap.Stringer("field", k))
	if d.notifier != nil {
		d.notifier.Error(fmt.Sprintf("Shortcut %s is already in use", name))
	}
	return false
}

// index returns the position of the text field for k.
func (d *Dialog) index(k config.Key) (int, error) {
	if !d.open {
		return -1, ErrNotOpen
	}
	for i, f := range d.fields {
		if f.Key == k {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownField, k)
}

// sameAccel compares two accelerator names after normalization.
func sameAccel(a, b string) bool {
	if strings.TrimSpace(a) == "" || a == Prompt {
		return false
	}
	na, err := key.Normalize(a)
	if err != nil {
		return false
	}
	return na == b
}
