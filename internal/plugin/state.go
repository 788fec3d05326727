package plugin

// State represents the lifecycle state of the plugin in one window.
type State int

// Window states.
const (
	// StateInactive - Plugin is not activated in the window.
	StateInactive State = iota

	// StateActivating - Activate is installing the actions and menu.
	StateActivating

	// StateActive - Actions and menu are installed.
	StateActive

	// StateDeactivating - Deactivate is removing the actions and menu.
	StateDeactivating
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActivating:
		return "activating"
	case StateActive:
		return "active"
	case StateDeactivating:
		return "deactivating"
	default:
		return "unknown"
	}
}
