package model

// ActionModel tracks whether the save action is available. The zero value is
// disabled and usable. Only the UI event loop writes to it.
type ActionModel struct{ saveEnabled bool }

// SaveEnabled reports whether saving is currently allowed.
func (m *ActionModel) SaveEnabled() bool {
	if m == nil {
		return false
	}
	return m.saveEnabled
}

// SetSaveEnabled stores the flag and reports whether it changed.
func (m *ActionModel) SetSaveEnabled(b bool) bool {
	if m == nil {
		return false
	}
	if m.saveEnabled == b { // no change
		return false
	}
	m.saveEnabled = b
	return true
}
