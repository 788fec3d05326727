package app

import (
	"github.com/google/uuid"

	"github.com/dshills/stringmod/internal/plugin"
)

// mergedMenu is a menu added through AddMenu.
type mergedMenu struct {
	id   string
	menu plugin.Menu
}

// UIManager holds the action groups and menus merged into a window.
type UIManager struct {
	groups     []*plugin.ActionGroup
	menus      []mergedMenu
	generation int
}

// NewUIManager creates an empty UI manager.
func NewUIManager() *UIManager {
	return &UIManager{}
}

// InsertActionGroup adds g. Inserting the same group twice has no effect.
func (u *UIManager) InsertActionGroup(g *plugin.ActionGroup) {
	for _, existing := range u.groups {
		if existing == g {
			return
		}
	}
	u.groups = append(u.groups, g)
}

// RemoveActionGroup removes g.
func (u *UIManager) RemoveActionGroup(g *plugin.ActionGroup) {
	for i, existing := range u.groups {
		if existing == g {
			u.groups = append(u.groups[:i], u.groups[i+1:]...)
			return
		}
	}
}

// AddMenu merges m and returns its merge id.
func (u *UIManager) AddMenu(m plugin.Menu) string {
	id := uuid.NewString()
	u.menus = append(u.menus, mergedMenu{id: id, menu: m})
	return id
}

// RemoveMenu removes the menu merged under id.
func (u *UIManager) RemoveMenu(mergeID string) {
	for i, m := range u.menus {
		if m.id == mergeID {
			u.menus = append(u.menus[:i], u.menus[i+1:]...)
			return
		}
	}
}

// EnsureUpdate marks the menus as changed so the next frame redraws them.
func (u *UIManager) EnsureUpdate() {
	u.generation++
}

// Generation increases on every EnsureUpdate.
func (u *UIManager) Generation() int {
	return u.generation
}

// Groups returns the inserted action groups.
func (u *UIManager) Groups() []*plugin.ActionGroup {
	return append([]*plugin.ActionGroup(nil), u.groups...)
}

// Menus returns the merged menus in merge order.
func (u *UIManager) Menus() []plugin.Menu {
	out := make([]plugin.Menu, len(u.menus))
	for i, m := range u.menus {
		out[i] = m.menu
	}
	return out
}

// Command finds the command called action in the inserted groups.
func (u *UIManager) Command(action string) (*plugin.ActionGroup, *plugin.Command, bool) {
	for _, g := range u.groups {
		if c, ok := g.Lookup(action); ok {
			return g, c, true
		}
	}
	return nil, nil, false
}
