package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/services"
)

type SummaryHandler struct {
	svc services.SummaryService
}

func NewSummaryHandler(svc services.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// WorkspaceSummary returns the roll-up for a workspace; pass tab_id to
// narrow it to one tab.
func (h *SummaryHandler) WorkspaceSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	tabID := uuid.Nil
	if raw := r.URL.Query().Get("tab_id"); raw != "" {
		tabID, err = uuid.Parse(raw)
		if err != nil {
			writeValidation(w, "invalid tab_id")
			return
		}
	}

	sum, err := h.svc.TabSummary(r.Context(), id, tabID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, sum)
}
