// Package api defines the wire-level response envelopes shared by every
// handler, plus the mapping from the error taxonomy to HTTP status codes.
package api

import (
	"net/http"

	"task_backend/internal/shared/apperr"
)

// ErrorResponse is the failure envelope. Details carries per-field messages
// for multi-field validation failures.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is a minimal success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuthentication:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewError builds the failure envelope for err. Internal causes are exposed
// in Details only when devMode is set; production clients see the generic
// message alone.
func NewError(err error, devMode bool) ErrorResponse {
	res := ErrorResponse{
		Error:   apperr.MessageOf(err),
		Details: apperr.DetailsOf(err),
	}
	if devMode && apperr.KindOf(err) == apperr.KindInternal {
		res.Details = append(res.Details, err.Error())
	}
	return res
}
