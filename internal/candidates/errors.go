package candidates

import (
	"errors"
	"net/http"
)

// Domain errors for candidate operations.
var (
	ErrNotFound         = errors.New("candidate not found")
	ErrDuplicate        = errors.New("candidate already exists")
	ErrNotPending       = errors.New("candidate is not awaiting review")
	ErrInvalidOutcome   = errors.New("review outcome must be SHORTLIST or REJECT")
	ErrEvaluationFailed = errors.New("resume evaluation failed")
	ErrFileTooLarge     = errors.New("file exceeds maximum upload size")
	ErrInvalidUpload    = errors.New("invalid upload")
	ErrUnsupportedType  = errors.New("only PDF uploads are supported")
)

// MapHTTPStatus maps candidate domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrNotPending) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrEvaluationFailed) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidOutcome) || errors.Is(err, ErrInvalidUpload) || errors.Is(err, ErrUnsupportedType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
