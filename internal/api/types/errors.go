package types

import (
	"net/http"

	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

// FromError converts any error into a wire-level APIError.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}
	if e, ok := err.(*appErr.AppError); ok {
		return &APIError{Code: string(e.Code), Message: e.Message}
	}
	return &APIError{Code: string(appErr.CodeUnknown), Message: err.Error()}
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code appErr.Code) int {
	switch code {
	case appErr.CodeValidation:
		return http.StatusBadRequest
	case appErr.CodeDuplicate:
		return http.StatusConflict
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
