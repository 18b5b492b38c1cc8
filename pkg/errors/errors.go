package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a stable error code for programmatic handling.
// The codes mirror the wire-level error taxonomy of the /api/v1 endpoints.
type Code string

const (
	CodeUnknown      Code = "unknown"
	CodeValidation   Code = "validation"
	CodeDuplicate    Code = "duplicate"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	CodeQueryFailed  Code = "query_failed"
	CodeCreateFailed Code = "create_failed"
	CodeUpdateFailed Code = "update_failed"
	CodeDeleteFailed Code = "delete_failed"
	CodeInternal     Code = "internal"
)

// AppError is a structured error type that carries a code, message, and optional metadata.
type AppError struct {
	Code    Code
	Message string
	Err     error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AppError) Unwrap() error { return e.Err }

// WithMeta attaches metadata to the error.
func (e *AppError) WithMeta(k string, v any) *AppError {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[k] = v
	return e
}

// New creates a new AppError with code and message.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with code and message.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return New(code, message)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode checks if an error has the provided code (through unwrapping).
func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// CodeOf extracts the code from an error, or CodeUnknown for plain errors.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// IsFailure reports whether the code is a generic persistence failure
// (the *_failed family) rather than a client-addressable condition.
func IsFailure(code Code) bool {
	return strings.HasSuffix(string(code), "_failed") || code == CodeInternal || code == CodeUnknown
}
