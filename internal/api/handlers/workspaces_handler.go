package handlers

import (
	"net/http"
	"strings"

	"github.com/paddynes2/stride-process-app/internal/api/types"
	"github.com/paddynes2/stride-process-app/internal/models"
	"github.com/paddynes2/stride-process-app/internal/repository"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

type WorkspacesHandler struct {
	repo     repository.WorkspaceRepository
	validate Validator
}

func NewWorkspacesHandler(repo repository.WorkspaceRepository, v Validator) *WorkspacesHandler {
	return &WorkspacesHandler{repo: repo, validate: v}
}

func (h *WorkspacesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, items)
}

// Create bootstraps a workspace with its default tab so the canvas always
// has somewhere to land.
func (h *WorkspacesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.WorkspaceCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeValidation(w, "Workspace name is required")
		return
	}
	ws := models.Workspace{Name: req.Name, Slug: slugify(req.Name), IsActive: true}
	if err := h.repo.Bootstrap(r.Context(), &ws); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, ws)
}

func (h *WorkspacesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var ws models.Workspace
	if err := h.repo.GetWithTabs(r.Context(), id, &ws); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, ws)
}

func (h *WorkspacesHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var ws models.Workspace
	if err := h.repo.GetByID(r.Context(), id, &ws); err != nil {
		writeError(w, err)
		return
	}
	applied := 0
	if err := applyField(patch, "name", &ws.Name, &applied); err != nil {
		writeError(w, err)
		return
	}
	if err := applyField(patch, "is_active", &ws.IsActive, &applied); err != nil {
		writeError(w, err)
		return
	}
	if applied == 0 {
		writeValidation(w, "No valid fields to update")
		return
	}
	if strings.TrimSpace(ws.Name) == "" {
		writeValidation(w, "Workspace name is required")
		return
	}
	if err := h.repo.Update(r.Context(), &ws); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeUpdateFailed, "update workspace failed"))
		return
	}
	writeData(w, http.StatusOK, ws)
}

func (h *WorkspacesHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
