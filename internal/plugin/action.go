package plugin

import "fmt"

// Command is one menu action.
type Command struct {
	// Name is the action name used in the accel path.
	Name string

	// Label is the menu text.
	Label string

	// Tooltip describes the action.
	Tooltip string

	// Accel is the accelerator name, empty when unbound.
	Accel string

	// Run executes the action in a window.
	Run func(w Window) error
}

// ActionGroup is a named, ordered set of commands that is enabled or
// disabled as a whole.
type ActionGroup struct {
	name      string
	commands  []*Command
	index     map[string]*Command
	sensitive bool
}

// NewActionGroup creates an empty, sensitive group.
func NewActionGroup(name string) *ActionGroup {
	return &ActionGroup{
		name:      name,
		index:     make(map[string]*Command),
		sensitive: true,
	}
}

// Name returns the group name.
func (g *ActionGroup) Name() string {
	return g.name
}

// Add appends cmd, replacing a command of the same name in place.
func (g *ActionGroup) Add(cmd *Command) {
	if old, ok := g.index[cmd.Name]; ok {
		for i, c := range g.commands {
			if c == old {
				g.commands[i] = cmd
			}
		}
	} else {
		g.commands = append(g.commands, cmd)
	}
	g.index[cmd.Name] = cmd
}

// Lookup returns the command called name.
func (g *ActionGroup) Lookup(name string) (*Command, bool) {
	c, ok := g.index[name]
	return c, ok
}

// Commands returns the commands in insertion order.
func (g *ActionGroup) Commands() []*Command {
	return append([]*Command(nil), g.commands...)
}

// SetAccel updates the accelerator shown for name.
func (g *ActionGroup) SetAccel(name, accel string) {
	if c, ok := g.index[name]; ok {
		c.Accel = accel
	}
}

// Sensitive reports whether the group's commands can run.
func (g *ActionGroup) Sensitive() bool {
	return g.sensitive
}

// SetSensitive enables or disables every command of the group.
func (g *ActionGroup) SetSensitive(sensitive bool) {
	g.sensitive = sensitive
}

// Activate runs the command called name in w.
func (g *ActionGroup) Activate(name string, w Window) error {
	c, ok := g.index[name]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownCommand, g.name, name)
	}
	if !g.sensitive {
		return fmt.Errorf("%w: %s", ErrInsensitive, g.name)
	}
	if c.Run == nil {
		return nil
	}
	return c.Run(w)
}

// MenuItem is one entry of a menu. A separator has no action.
type MenuItem struct {
	Action    string
	Separator bool
}

// Menu is a submenu merged into a host menu.
type Menu struct {
	// Name identifies the menu.
	Name string

	// Label is the displayed title.
	Label string

	// Parent is the host menu the submenu is placed in.
	Parent string

	Items []MenuItem
}

// Actions returns the action names of the menu in order, skipping
// separators.
func (m Menu) Actions() []string {
	var out []string
	for _, it := range m.Items {
		if !it.Separator {
			out = append(out, it.Action)
		}
	}
	return out
}
