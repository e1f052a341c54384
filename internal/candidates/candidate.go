package candidates

import (
	"time"

	"github.com/google/uuid"

	"github.com/talentsift/sift/internal/evaluation"
)

// Candidate lifecycle statuses. Persisted candidates are always either
// pending review or finalized.
const (
	StatusPendingReview = "NEEDS_HUMAN_REVIEW"
	StatusFinalized     = "FINALIZED"
)

// Screening outcomes.
const (
	OutcomeShortlist = "SHORTLIST"
	OutcomeReject    = "REJECT"
	OutcomeReview    = "NEEDS_HUMAN_REVIEW"
)

// Candidate represents a screened applicant. FinalOutcome is set when
// and only when Status is FINALIZED.
type Candidate struct {
	ID               uuid.UUID            `json:"id"`
	Filename         string               `json:"filename"`
	ResumeText       string               `json:"resume_text"`
	JobDescription   string               `json:"job_description"`
	Scorecard        evaluation.Scorecard `json:"scorecard"`
	AutomatedOutcome string               `json:"automated_outcome"`
	FinalOutcome     *string              `json:"final_outcome"`
	Status           string               `json:"status"`
	PageCount        *int                 `json:"page_count"`
	StorageKey       string               `json:"storage_key"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// CreateCommand carries the data needed to screen and register a new
// candidate. Data holds the raw resume file bytes. PageCount is optional
// and may be extracted by the caller via pdfcpu; nil values are stored
// as NULL.
type CreateCommand struct {
	Data           []byte
	Filename       string
	ContentType    string
	JobDescription string
	PageCount      *int
}

// Review records a human screening decision for a candidate.
type Review struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Reviewer    string    `json:"reviewer"`
	Outcome     string    `json:"outcome"`
	Rationale   string    `json:"rationale"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ReviewCommand carries a human reviewer's decision. Outcome must be
// SHORTLIST or REJECT.
type ReviewCommand struct {
	Reviewer  string `json:"reviewer"`
	Outcome   string `json:"outcome"`
	Rationale string `json:"rationale"`
}

// Stats summarizes the full candidate set regardless of any active filters.
type Stats struct {
	Total         int `json:"total"`
	PendingReview int `json:"pending_review"`
	Finalized     int `json:"finalized"`
}
