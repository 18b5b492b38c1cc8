package canvas

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/client"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"github.com/paddynes2/stride-process-app/pkg/logger"
	"go.uber.org/zap"
)

// Default placement windows for newly created entities.
const (
	stepSpawnBaseX, stepSpawnSpanX     = 100, 400
	stepSpawnBaseY, stepSpawnSpanY     = 100, 300
	sectionSpawnBase, sectionSpawnSpan = 50, 200
)

// Editor ties the store, the selection, and the mutation gateway into the
// canvas's optimistic editing flows. Creates apply locally only after
// server confirmation; deletes and position drags apply immediately and
// are never rolled back on failure (the notifier carries the bad news).
type Editor struct {
	store       *Store
	gw          *client.Client
	notify      Notifier
	workspaceID uuid.UUID
	tabID       uuid.UUID
	rng         *rand.Rand
}

func NewEditor(store *Store, gw *client.Client, notify Notifier, workspaceID, tabID uuid.UUID) *Editor {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &Editor{
		store:       store,
		gw:          gw,
		notify:      notify,
		workspaceID: workspaceID,
		tabID:       tabID,
		rng:         rand.New(rand.NewSource(rand.Int63())),
	}
}

// LoadCanvas fetches a tab's sections, steps, and connections and seeds
// a fresh store from them. Called on tab switch and initial open.
func LoadCanvas(ctx context.Context, gw *client.Client, workspaceID, tabID uuid.UUID) (*Store, error) {
	sections, err := gw.ListSections(ctx, workspaceID, tabID)
	if err != nil {
		return nil, err
	}
	steps, err := gw.ListSteps(ctx, workspaceID, tabID)
	if err != nil {
		return nil, err
	}
	connections, err := gw.ListConnections(ctx, workspaceID, tabID)
	if err != nil {
		return nil, err
	}
	return NewStore(sections, steps, connections), nil
}

// Store exposes the underlying entity store for read access and selection.
func (e *Editor) Store() *Store { return e.store }

// Graph re-projects the current snapshot. Call after any mutation to
// resynchronize the renderer's node/edge cache.
func (e *Editor) Graph() ([]Node, []Edge) {
	return ProjectSnapshot(e.store.Snapshot())
}

// AddStep creates a step at a random offset within the spawn window with
// a placeholder name, applies the confirmed record, and selects it.
func (e *Editor) AddStep(ctx context.Context) (*models.Step, error) {
	fields := client.Fields{
		"workspace_id": e.workspaceID,
		"tab_id":       e.tabID,
		"name":         "Untitled",
		"position_x":   stepSpawnBaseX + e.rng.Float64()*stepSpawnSpanX,
		"position_y":   stepSpawnBaseY + e.rng.Float64()*stepSpawnSpanY,
	}
	st, err := e.gw.CreateStep(ctx, fields)
	if err != nil {
		e.notify.Error("Failed to create step")
		return nil, err
	}
	e.store.AddStep(*st)
	e.store.SelectStep(st.ID)
	return st, nil
}

// AddSection creates a section at a random offset within its (smaller)
// spawn window.
func (e *Editor) AddSection(ctx context.Context) (*models.Section, error) {
	fields := client.Fields{
		"workspace_id": e.workspaceID,
		"tab_id":       e.tabID,
		"name":         "New Section",
		"position_x":   sectionSpawnBase + e.rng.Float64()*sectionSpawnSpan,
		"position_y":   sectionSpawnBase + e.rng.Float64()*sectionSpawnSpan,
	}
	sec, err := e.gw.CreateSection(ctx, fields)
	if err != nil {
		e.notify.Error("Failed to create section")
		return nil, err
	}
	e.store.AddSection(*sec)
	return sec, nil
}

// Connect creates a directed edge from one step to another, as the
// drag-to-connect gesture does. Self-loops are rejected locally before
// any persistence attempt.
func (e *Editor) Connect(ctx context.Context, sourceStepID, targetStepID uuid.UUID) (*models.Connection, error) {
	if sourceStepID == targetStepID {
		err := appErr.New(appErr.CodeValidation, "source and target steps must be different")
		e.notify.Error("Failed to create connection")
		return nil, err
	}
	conn, err := e.gw.CreateConnection(ctx, e.workspaceID, e.tabID, sourceStepID, targetStepID)
	if err != nil {
		e.notify.Error("Failed to create connection")
		return nil, err
	}
	e.store.AddConnection(*conn)
	return conn, nil
}

// EndStepDrag persists a step's position after a drag gesture ends. The
// local position is already current (drag visuals are ephemeral renderer
// state); the confirmed record replaces it on success and a failure is
// silently dropped, matching the fire-and-forget drag contract.
func (e *Editor) EndStepDrag(ctx context.Context, id uuid.UUID, x, y float64) {
	if st, ok := e.store.StepByID(id); ok {
		st.PositionX, st.PositionY = x, y
		e.store.ReplaceStep(st)
	}
	updated, err := e.gw.UpdateStep(ctx, id, client.Fields{"position_x": x, "position_y": y})
	if err != nil {
		logger.L().Debug("step position persist failed", zap.String("step_id", id.String()), zap.Error(err))
		return
	}
	e.store.ReplaceStep(*updated)
}

// EndSectionDrag is the section mirror of EndStepDrag.
func (e *Editor) EndSectionDrag(ctx context.Context, id uuid.UUID, x, y float64) {
	if sec, ok := e.store.SectionByID(id); ok {
		sec.PositionX, sec.PositionY = x, y
		e.store.ReplaceSection(sec)
	}
	updated, err := e.gw.UpdateSection(ctx, id, client.Fields{"position_x": x, "position_y": y})
	if err != nil {
		logger.L().Debug("section position persist failed", zap.String("section_id", id.String()), zap.Error(err))
		return
	}
	e.store.ReplaceSection(*updated)
}

// DeleteStep removes a step locally (cascading its connections and
// clearing its selection) and then persists. A failed remote delete
// leaves the step visually removed until the next reload.
func (e *Editor) DeleteStep(ctx context.Context, id uuid.UUID) {
	e.store.RemoveStep(id)
	if err := e.gw.DeleteStep(ctx, id); err != nil {
		e.notify.Error("Failed to delete step")
		return
	}
	e.notify.Success("Step deleted")
}

// DeleteSection removes a section locally (orphaning its steps and
// clearing its selection) and then persists.
func (e *Editor) DeleteSection(ctx context.Context, id uuid.UUID) {
	e.store.RemoveSection(id)
	if err := e.gw.DeleteSection(ctx, id); err != nil {
		e.notify.Error("Failed to delete section")
		return
	}
	e.notify.Success("Section deleted")
}

// RemoveEdge deletes a connection, as the edge-removal gesture does.
func (e *Editor) RemoveEdge(ctx context.Context, id uuid.UUID) {
	e.store.RemoveConnection(id)
	if err := e.gw.DeleteConnection(ctx, id); err != nil {
		e.notify.Error("Failed to delete connection")
	}
}

// DeleteSelection deletes whichever entity is currently selected.
func (e *Editor) DeleteSelection(ctx context.Context) {
	if id := e.store.SelectedStepID(); id != uuid.Nil {
		e.DeleteStep(ctx, id)
		return
	}
	if id := e.store.SelectedSectionID(); id != uuid.Nil {
		e.DeleteSection(ctx, id)
	}
}

// Key identifiers for the canvas keyboard surface.
const (
	KeyDelete     = "Delete"
	KeyBackspace  = "Backspace"
	KeyNewStep    = "n"
	KeyNewSection = "s"
)

// HandleKey implements the canvas keyboard surface. Keys are ignored
// while a text input has focus. The returned flag tells the embedder to
// suppress the browser/default action ("s" would otherwise trigger
// browser side effects).
func (e *Editor) HandleKey(ctx context.Context, key string, textInputFocused bool) (handled bool) {
	if textInputFocused {
		return false
	}
	switch key {
	case KeyDelete, KeyBackspace:
		e.DeleteSelection(ctx)
		return true
	case KeyNewStep:
		_, _ = e.AddStep(ctx)
		return true
	case KeyNewSection:
		_, _ = e.AddSection(ctx)
		return true
	default:
		return false
	}
}
