package canvas

import "github.com/google/uuid"

// Selection tracks at most one selected step XOR one selected section.
// Selecting one kind clears the other; both fields are never non-nil at
// the same time. The zero value means nothing is selected.
type Selection struct {
	stepID    uuid.UUID
	sectionID uuid.UUID
}

// SelectStep selects a step (or clears the step selection with uuid.Nil).
// A non-nil id forces the section selection clear.
func (s *Store) SelectStep(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.stepID = id
	if id != uuid.Nil {
		s.selection.sectionID = uuid.Nil
	}
}

// SelectSection is the mirror of SelectStep.
func (s *Store) SelectSection(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.sectionID = id
	if id != uuid.Nil {
		s.selection.stepID = uuid.Nil
	}
}

// ClearSelection clears both, as a click on empty canvas does.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.stepID = uuid.Nil
	s.selection.sectionID = uuid.Nil
}

// SelectedStepID returns the selected step id, or uuid.Nil.
func (s *Store) SelectedStepID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.stepID
}

// SelectedSectionID returns the selected section id, or uuid.Nil.
func (s *Store) SelectedSectionID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.sectionID
}

// PanelVisible reports whether a detail panel should be shown.
func (s *Store) PanelVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.stepID != uuid.Nil || s.selection.sectionID != uuid.Nil
}
