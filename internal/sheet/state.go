package sheet

// State is the position state of a sheet. The numeric values are stable and
// are used as persisted codes.
type State int

const (
	StateDragging State = iota + 1
	StateSettling
	StateExpanded
	StateCollapsed
	StateHidden
	StateAnchor
	// StateForceHidden hides the sheet programmatically, even when it is not
	// hideable by the user.
	StateForceHidden
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateDragging:
		return "Dragging"
	case StateSettling:
		return "Settling"
	case StateExpanded:
		return "Expanded"
	case StateCollapsed:
		return "Collapsed"
	case StateHidden:
		return "Hidden"
	case StateAnchor:
		return "Anchor"
	case StateForceHidden:
		return "ForceHidden"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= StateDragging && s <= StateForceHidden
}

// IsResting returns true for stable positions with no interaction or
// animation in progress.
func (s State) IsResting() bool {
	switch s {
	case StateExpanded, StateCollapsed, StateHidden, StateAnchor, StateForceHidden:
		return true
	default:
		return false
	}
}

// IsHidden returns true if the sheet is off screen in state s.
func (s State) IsHidden() bool {
	return s == StateHidden || s == StateForceHidden
}
