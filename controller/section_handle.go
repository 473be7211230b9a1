package controller

// Section is the handle returned by Register. Page sections hold it to
// report visibility and to unregister on unmount without keeping a
// reference to the coordinator itself
type Section struct {
	c  *Coordinator
	id string
}

// ID returns the section identifier
func (s *Section) ID() string {
	return s.id
}

// SetVisible reports a viewport-intersection signal
func (s *Section) SetVisible(visible bool) {
	s.c.SetVisible(s.id, visible)
}

// Unregister removes the section, cleaning up its animation
func (s *Section) Unregister() error {
	return s.c.Unregister(s.id)
}

// State returns the current lifecycle state
func (s *Section) State() SectionState {
	return s.c.State(s.id)
}
