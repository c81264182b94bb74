package gui

// Memory is the only state that survives across frames: the single slot
// naming which widget, if any, owns the in-progress pointer interaction.
// The slot is set when a widget with an id is clicked while the slot is
// idle, and cleared exactly once when the pointer is no longer down.
type Memory struct {
	activeID  ID
	hasActive bool
}

// ActiveID returns the id owning the current interaction, if any.
func (m *Memory) ActiveID() (ID, bool) {
	return m.activeID, m.hasActive
}

func (m *Memory) setActive(id ID) {
	m.activeID = id
	m.hasActive = true
}

func (m *Memory) clearActive() {
	m.activeID = 0
	m.hasActive = false
}

func (m *Memory) isActive(id ID) bool {
	return m.hasActive && m.activeID == id
}
