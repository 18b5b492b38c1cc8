package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/api/types"
	"github.com/paddynes2/stride-process-app/internal/models"
	"github.com/paddynes2/stride-process-app/internal/repository"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"gorm.io/datatypes"
)

type StepsHandler struct {
	repo     repository.StepRepository
	validate Validator
}

func NewStepsHandler(repo repository.StepRepository, v Validator) *StepsHandler {
	return &StepsHandler{repo: repo, validate: v}
}

func (h *StepsHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *StepsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.StepCreateRequest
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

	s := models.Step{
		WorkspaceID: workspaceID,
		TabID:       tabID,
		Name:        strings.TrimSpace(req.Name),
		Status:      models.StatusDraft,
		Executor:    models.ExecutorEmpty,
	}
	if s.Name == "" {
		s.Name = "Untitled"
	}
	if req.SectionID != nil {
		sectionID, err := uuid.Parse(*req.SectionID)
		if err != nil {
			writeValidation(w, "invalid section_id")
			return
		}
		s.SectionID = &sectionID
	}
	if req.PositionX != nil {
		s.PositionX = *req.PositionX
	}
	if req.PositionY != nil {
		s.PositionY = *req.PositionY
	}
	if req.Status != nil {
		s.Status = models.StepStatus(*req.Status)
	}
	if req.Executor != nil {
		s.Executor = models.ExecutorType(*req.Executor)
	}
	s.StepType = req.StepType
	s.Notes = req.Notes
	s.VideoURL = req.VideoURL
	s.TimeMinutes = req.TimeMinutes
	s.FrequencyPerMonth = req.FrequencyPerMonth
	if len(req.Attributes) > 0 {
		var attrs map[string]any
		if err := json.Unmarshal(req.Attributes, &attrs); err != nil {
			writeValidation(w, "attributes must be a JSON object")
			return
		}
		s.Attributes = datatypes.JSONMap(attrs)
	}

	if err := h.repo.Create(r.Context(), &s); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, s)
}

func (h *StepsHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var s models.Step
	if err := h.repo.GetByID(r.Context(), id, &s); err != nil {
		writeError(w, err)
		return
	}
	// Editable field whitelist; anything else in the body is ignored.
	applied := 0
	if err := firstErr(
		applyField(patch, "name", &s.Name, &applied),
		applyField(patch, "section_id", &s.SectionID, &applied),
		applyField(patch, "position_x", &s.PositionX, &applied),
		applyField(patch, "position_y", &s.PositionY, &applied),
		applyField(patch, "status", &s.Status, &applied),
		applyField(patch, "step_type", &s.StepType, &applied),
		applyField(patch, "executor", &s.Executor, &applied),
		applyField(patch, "notes", &s.Notes, &applied),
		applyField(patch, "video_url", &s.VideoURL, &applied),
		applyField(patch, "attributes", &s.Attributes, &applied),
		applyField(patch, "time_minutes", &s.TimeMinutes, &applied),
		applyField(patch, "frequency_per_month", &s.FrequencyPerMonth, &applied),
	); err != nil {
		writeError(w, err)
		return
	}
	if applied == 0 {
		writeValidation(w, "No valid fields to update")
		return
	}
	if strings.TrimSpace(s.Name) == "" {
		writeValidation(w, "Step name is required")
		return
	}
	if err := h.validate.Struct(s); err != nil {
		writeValidation(w, err.Error())
		return
	}
	if err := h.repo.Update(r.Context(), &s); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeUpdateFailed, "update step failed"))
		return
	}
	writeData(w, http.StatusOK, s)
}

func (h *StepsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
