package canvas

import (
	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
)

// NodeType distinguishes the two node flavors on the canvas.
type NodeType string

const (
	NodeSection NodeType = "section"
	NodeStep    NodeType = "step"
)

// ExtentParent constrains a child node's movement to its parent's bounds.
const ExtentParent = "parent"

// Node is one renderable node of the projected graph. The renderer owns
// its copy of these; it is a disposable cache that gets rebuilt from the
// store on every relevant change, never mutated independently.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	ParentID string   `json:"parent_id,omitempty"`
	Extent   string   `json:"extent,omitempty"`
	Selected bool     `json:"selected"`

	// Exactly one of these is set, matching Type.
	Section *models.Section `json:"section,omitempty"`
	Step    *models.Step    `json:"step,omitempty"`
}

// Edge is one directed edge of the projected graph.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// SectionNodeID returns the graph node id for a section.
func SectionNodeID(id uuid.UUID) string { return "section-" + id.String() }

// StepNodeID returns the graph node id for a step.
func StepNodeID(id uuid.UUID) string { return "step-" + id.String() }

// EdgeID returns the graph edge id for a connection.
func EdgeID(id uuid.UUID) string { return "edge-" + id.String() }

// Project derives the renderable node/edge graph from the entity
// collections and selection state. It is pure and deterministic: the same
// inputs always produce the same id-stable node/edge sets, so the caller
// can re-project on every change and diff against the renderer's cache.
//
// Sections come first so containers render underneath their children.
func Project(sections []models.Section, steps []models.Step, connections []models.Connection, selectedStepID, selectedSectionID uuid.UUID) ([]Node, []Edge) {
	nodes := make([]Node, 0, len(sections)+len(steps))

	for i := range sections {
		sec := sections[i]
		nodes = append(nodes, Node{
			ID:       SectionNodeID(sec.ID),
			Type:     NodeSection,
			X:        sec.PositionX,
			Y:        sec.PositionY,
			Width:    sec.Width,
			Height:   sec.Height,
			Selected: sec.ID == selectedSectionID,
			Section:  &sec,
		})
	}

	for i := range steps {
		st := steps[i]
		n := Node{
			ID:       StepNodeID(st.ID),
			Type:     NodeStep,
			X:        st.PositionX,
			Y:        st.PositionY,
			Selected: st.ID == selectedStepID,
			Step:     &st,
		}
		if st.SectionID != nil {
			n.ParentID = SectionNodeID(*st.SectionID)
			n.Extent = ExtentParent
		}
		nodes = append(nodes, n)
	}

	edges := make([]Edge, 0, len(connections))
	for _, c := range connections {
		edges = append(edges, Edge{
			ID:     EdgeID(c.ID),
			Source: StepNodeID(c.SourceStepID),
			Target: StepNodeID(c.TargetStepID),
		})
	}

	return nodes, edges
}

// ProjectSnapshot projects a store snapshot.
func ProjectSnapshot(snap Snapshot) ([]Node, []Edge) {
	return Project(snap.Sections, snap.Steps, snap.Connections, snap.SelectedStepID, snap.SelectedSectionID)
}
