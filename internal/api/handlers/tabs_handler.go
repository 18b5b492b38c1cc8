package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/api/types"
	"github.com/paddynes2/stride-process-app/internal/models"
	"github.com/paddynes2/stride-process-app/internal/repository"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

type TabsHandler struct {
	repo     repository.TabRepository
	validate Validator
}

func NewTabsHandler(repo repository.TabRepository, v Validator) *TabsHandler {
	return &TabsHandler{repo: repo, validate: v}
}

func (h *TabsHandler) List(w http.ResponseWriter, r *http.Request) {
	wsRaw := r.URL.Query().Get("workspace_id")
	if wsRaw == "" {
		writeValidation(w, "workspace_id query param is required")
		return
	}
	workspaceID, err := uuid.Parse(wsRaw)
	if err != nil {
		writeValidation(w, "invalid workspace_id")
		return
	}
	items, err := h.repo.ListByWorkspace(r.Context(), workspaceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, items)
}

func (h *TabsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.TabCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := h.validate.Struct(req); err != nil {
		writeValidation(w, err.Error())
		return
	}
	workspaceID, _ := uuid.Parse(req.WorkspaceID)
	tab := models.Tab{WorkspaceID: workspaceID, Name: req.Name}
	if err := h.repo.Create(r.Context(), &tab); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, tab)
}

func (h *TabsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var patch types.Patch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	var tab models.Tab
	if err := h.repo.GetByID(r.Context(), id, &tab); err != nil {
		writeError(w, err)
		return
	}
	applied := 0
	if err := firstErr(
		applyField(patch, "name", &tab.Name, &applied),
		applyField(patch, "position", &tab.Position, &applied),
		applyField(patch, "viewport", &tab.Viewport, &applied),
	); err != nil {
		writeError(w, err)
		return
	}
	if applied == 0 {
		writeValidation(w, "No valid fields to update")
		return
	}
	if strings.TrimSpace(tab.Name) == "" {
		writeValidation(w, "Tab name is required")
		return
	}
	if err := h.repo.Update(r.Context(), &tab); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeUpdateFailed, "update tab failed"))
		return
	}
	writeData(w, http.StatusOK, tab)
}

// Delete refuses to remove a workspace's last remaining tab. The canvas
// client checks this before calling; the server check backs it up.
func (h *TabsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var tab models.Tab
	if err := h.repo.GetByID(r.Context(), id, &tab); err != nil {
		writeError(w, err)
		return
	}
	n, err := h.repo.CountByWorkspace(r.Context(), tab.WorkspaceID)
	if err != nil {
		writeError(w, err)
		return
	}
	if n <= 1 {
		writeValidation(w, "Cannot delete the last tab of a workspace")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, types.Deleted{Deleted: true})
}
