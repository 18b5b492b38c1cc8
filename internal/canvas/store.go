// Package canvas is the synchronization core of the process-mapping
// canvas: canonical entity collections for one tab, a pure projection to
// a renderable node/edge graph, selection state, and the optimistic
// mutation flows that keep all three consistent with the remote store.
package canvas

import (
	"sync"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
)

// Store holds the canonical collections of sections, steps, and
// connections for the active tab, ordered by insertion and keyed by id.
// It performs no I/O: all remote persistence is driven by the caller, so
// the store can back read-only rendering and tests without a network.
//
// Every mutation rebuilds the affected slice and swaps it in under the
// lock in a single assignment, so concurrent readers never observe a
// partially-updated collection.
type Store struct {
	mu          sync.RWMutex
	sections    []models.Section
	steps       []models.Step
	connections []models.Connection

	selection Selection
}

// NewStore seeds a store with the server's current collections.
func NewStore(sections []models.Section, steps []models.Step, connections []models.Connection) *Store {
	s := &Store{}
	s.sections = append(s.sections, sections...)
	s.steps = append(s.steps, steps...)
	s.connections = append(s.connections, connections...)
	return s
}

// Snapshot is a consistent copy of all three collections plus selection.
type Snapshot struct {
	Sections          []models.Section
	Steps             []models.Step
	Connections       []models.Connection
	SelectedStepID    uuid.UUID
	SelectedSectionID uuid.UUID
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Sections:          append([]models.Section(nil), s.sections...),
		Steps:             append([]models.Step(nil), s.steps...),
		Connections:       append([]models.Connection(nil), s.connections...),
		SelectedStepID:    s.selection.stepID,
		SelectedSectionID: s.selection.sectionID,
	}
}

// StepByID returns the current copy of a step, if present.
func (s *Store) StepByID(id uuid.UUID) (models.Step, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.steps {
		if st.ID == id {
			return st, true
		}
	}
	return models.Step{}, false
}

// SectionByID returns the current copy of a section, if present.
func (s *Store) SectionByID(id uuid.UUID) (models.Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return models.Section{}, false
}

// --- creates: append to the matching collection ---

func (s *Store) AddSection(sec models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = append(append([]models.Section(nil), s.sections...), sec)
}

func (s *Store) AddStep(st models.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(append([]models.Step(nil), s.steps...), st)
}

func (s *Store) AddConnection(c models.Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections = append(append([]models.Connection(nil), s.connections...), c)
}

// --- updates: replace the record with the matching id, no-op if absent ---

func (s *Store) ReplaceSection(sec models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]models.Section(nil), s.sections...)
	for i := range next {
		if next[i].ID == sec.ID {
			next[i] = sec
			break
		}
	}
	s.sections = next
}

func (s *Store) ReplaceStep(st models.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]models.Step(nil), s.steps...)
	for i := range next {
		if next[i].ID == st.ID {
			next[i] = st
			break
		}
	}
	s.steps = next
}

// --- deletes ---

// RemoveStep removes the step, every connection referencing it as source
// or target, and clears the selection if it pointed at the step.
func (s *Store) RemoveStep(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	steps := make([]models.Step, 0, len(s.steps))
	for _, st := range s.steps {
		if st.ID != id {
			steps = append(steps, st)
		}
	}
	conns := make([]models.Connection, 0, len(s.connections))
	for _, c := range s.connections {
		if c.SourceStepID != id && c.TargetStepID != id {
			conns = append(conns, c)
		}
	}
	s.steps = steps
	s.connections = conns
	if s.selection.stepID == id {
		s.selection.stepID = uuid.Nil
	}
}

// RemoveSection removes the section and orphans its member steps
// (section_id set to nil); the steps themselves survive. Clears the
// selection if it pointed at the section.
func (s *Store) RemoveSection(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sections := make([]models.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		if sec.ID != id {
			sections = append(sections, sec)
		}
	}
	steps := append([]models.Step(nil), s.steps...)
	for i := range steps {
		if steps[i].SectionID != nil && *steps[i].SectionID == id {
			steps[i].SectionID = nil
		}
	}
	s.sections = sections
	s.steps = steps
	if s.selection.sectionID == id {
		s.selection.sectionID = uuid.Nil
	}
}

func (s *Store) RemoveConnection(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conns := make([]models.Connection, 0, len(s.connections))
	for _, c := range s.connections {
		if c.ID != id {
			conns = append(conns, c)
		}
	}
	s.connections = conns
}
