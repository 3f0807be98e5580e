package sheet

// SavedState is the persistable part of a sheet. Super carries the opaque
// state of whatever owns the sheet.
type SavedState struct {
	Super []byte
	State int
}

// Save captures the current state together with super.
func (s *Sheet) Save(super []byte) SavedState {
	return SavedState{Super: super, State: int(s.state)}
}

// Restore applies a saved state and returns its Super payload. A measured
// sheet is laid out again to move to the restored position.
func (s *Sheet) Restore(ss SavedState) []byte {
	s.state = RestoreState(ss.State)
	s.settlePending = false
	s.helper.stopSettling()
	if s.measured {
		s.requestLayout()
	}
	return ss.Super
}

// RestoreState maps a persisted state code to the state to resume in.
// Transient states and unknown codes resume collapsed.
func RestoreState(code int) State {
	st := State(code)
	if !st.Valid() || st == StateDragging || st == StateSettling {
		return StateCollapsed
	}
	return st
}
