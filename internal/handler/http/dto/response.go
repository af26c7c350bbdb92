package dto

import (
	"net/http"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

const internalErrorMessage = "internal server error"

// MessageResponse is a generic response for success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// StatusFor maps a use case error to its HTTP status.
func StatusFor(err error) int {
	switch entity.KindOf(err) {
	case entity.KindValidation:
		return http.StatusBadRequest
	case entity.KindNotFound:
		return http.StatusNotFound
	case entity.KindUnauthorized:
		return http.StatusUnauthorized
	case entity.KindForbidden:
		return http.StatusForbidden
	case entity.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the status and body for err. Internal errors never leak detail.
func NewErrorResponse(err error) (int, ErrorResponse) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		return status, ErrorResponse{Message: internalErrorMessage}
	}
	return status, ErrorResponse{Message: err.Error()}
}
