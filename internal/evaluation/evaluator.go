// Package evaluation scores resume text against a job description using
// a language model and returns a structured scorecard.
package evaluation

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured indicates no API key is configured for the evaluator.
	ErrNotConfigured = errors.New("evaluator not configured")
	// ErrInvalidResponse indicates the model response could not be parsed
	// into a scorecard.
	ErrInvalidResponse = errors.New("invalid evaluation response")
)

// System evaluates resumes against job descriptions.
type System interface {
	// Evaluate scores the resume text against the job description.
	// Returns ErrNotConfigured when no API key is set and
	// ErrInvalidResponse when the model output cannot be parsed.
	Evaluate(ctx context.Context, resumeText, jobDescription string) (Scorecard, error)
}
