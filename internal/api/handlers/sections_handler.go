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

type SectionsHandler struct {
	repo     repository.SectionRepository
	validate Validator
}

func NewSectionsHandler(repo repository.SectionRepository, v Validator) *SectionsHandler {
	return &SectionsHandler{repo: repo, validate: v}
}

func (h *SectionsHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *SectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.SectionCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidation(w, err.Error())
		return
	}
	workspaceID, _ := uuid.Parse(req.WorkspaceID)
	tabID, _ := uuid.Parse(req.TabID)

	s := models.Section{
		WorkspaceID: workspaceID,
		TabID:       tabID,
		Name:        strings.TrimSpace(req.Name),
		Width:       400,
		Height:      300,
	}
	if s.Name == "" {
		s.Name = "New Section"
	}
	if req.PositionX != nil {
		s.PositionX = *req.PositionX
	}
	if req.PositionY != nil {
		s.PositionY = *req.PositionY
	}
	if req.Width != nil {
		s.Width = *req.Width
	}
	if req.Height != nil {
		s.Height = *req.Height
	}
	if err := h.repo.Create(r.Context(), &s); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, s)
}

func (h *SectionsHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var s models.Section
	if err := h.repo.GetByID(r.Context(), id, &s); err != nil {
		writeError(w, err)
		return
	}
	// Editable field whitelist; anything else in the body is ignored.
	applied := 0
	if err := firstErr(
		applyField(patch, "name", &s.Name, &applied),
		applyField(patch, "summary", &s.Summary, &applied),
		applyField(patch, "position_x", &s.PositionX, &applied),
		applyField(patch, "position_y", &s.PositionY, &applied),
		applyField(patch, "width", &s.Width, &applied),
		applyField(patch, "height", &s.Height, &applied),
		applyField(patch, "notes", &s.Notes, &applied),
	); err != nil {
		writeError(w, err)
		return
	}
	if applied == 0 {
		writeValidation(w, "No valid fields to update")
		return
	}
	if strings.TrimSpace(s.Name) == "" {
		writeValidation(w, "Section name is required")
		return
	}
	if err := h.repo.Update(r.Context(), &s); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeUpdateFailed, "update section failed"))
		return
	}
	writeData(w, http.StatusOK, s)
}

func (h *SectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// scopeParams reads the workspace_id (required) and tab_id (optional)
// query params shared by the list endpoints.
func scopeParams(r *http.Request) (workspaceID, tabID uuid.UUID, err error) {
	wsRaw := r.URL.Query().Get("workspace_id")
	if wsRaw == "" {
		return uuid.Nil, uuid.Nil, appErr.New(appErr.CodeValidation, "workspace_id query param is required")
	}
	workspaceID, err = uuid.Parse(wsRaw)
	if err != nil {
		return uuid.Nil, uuid.Nil, appErr.New(appErr.CodeValidation, "invalid workspace_id")
	}
	if tabRaw := r.URL.Query().Get("tab_id"); tabRaw != "" {
		tabID, err = uuid.Parse(tabRaw)
		if err != nil {
			return uuid.Nil, uuid.Nil, appErr.New(appErr.CodeValidation, "invalid tab_id")
		}
	}
	return workspaceID, tabID, nil
}
