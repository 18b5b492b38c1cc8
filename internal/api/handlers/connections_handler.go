package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/api/types"
	"github.com/paddynes2/stride-process-app/internal/models"
	"github.com/paddynes2/stride-process-app/internal/repository"
)

type ConnectionsHandler struct {
	repo     repository.ConnectionRepository
	validate Validator
}

func NewConnectionsHandler(repo repository.ConnectionRepository, v Validator) *ConnectionsHandler {
	return &ConnectionsHandler{repo: repo, validate: v}
}

func (h *ConnectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, tabID, err := scopeParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.repo.ListByTab(r.Context(), workspaceID, tabID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, items)
}

// Create inserts a directed edge. Self-loops are rejected before touching
// the store; the repository maps the unique-index conflict to a 409.
func (h *ConnectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ConnectionCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidation(w, err.Error())
		return
	}
	if req.SourceStepID == req.TargetStepID {
		writeValidation(w, "source and target steps must be different")
		return
	}
	workspaceID, _ := uuid.Parse(req.WorkspaceID)
	tabID, _ := uuid.Parse(req.TabID)
	sourceID, _ := uuid.Parse(req.SourceStepID)
	targetID, _ := uuid.Parse(req.TargetStepID)

	c := models.Connection{
		WorkspaceID:  workspaceID,
		TabID:        tabID,
		SourceStepID: sourceID,
		TargetStepID: targetID,
	}
	if err := h.repo.Create(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, c)
}

func (h *ConnectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, types.Deleted{Deleted: true})
}
