package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/api/types"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

// Validator is the slice of go-playground/validator the handlers need.
type Validator interface{ Struct(any) error }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, types.Envelope{Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, types.StatusFor(appErr.CodeOf(err)), types.Envelope{Error: types.FromError(err)})
}

func writeValidation(w http.ResponseWriter, msg string) {
	writeError(w, appErr.New(appErr.CodeValidation, msg))
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErr.New(appErr.CodeValidation, "invalid json body")
	}
	return nil
}

func pathID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, appErr.New(appErr.CodeValidation, "invalid id")
	}
	return id, nil
}
