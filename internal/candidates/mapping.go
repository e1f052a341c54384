package candidates

import (
	"encoding/json"
	"net/url"

	"github.com/talentsift/sift/pkg/query"
	"github.com/talentsift/sift/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "candidates", "c").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("resume_text", "ResumeText").
	Project("job_description", "JobDescription").
	Project("scorecard", "Scorecard").
	Project("automated_outcome", "AutomatedOutcome").
	Project("final_outcome", "FinalOutcome").
	Project("status", "Status").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var reviewProjection = query.
	NewProjectionMap("public", "reviews", "r").
	Project("id", "ID").
	Project("candidate_id", "CandidateID").
	Project("reviewer", "Reviewer").
	Project("outcome", "Outcome").
	Project("rationale", "Rationale").
	Project("submitted_at", "SubmittedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

var reviewSort = query.SortField{
	Field:      "SubmittedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for candidate queries.
// Nil fields are ignored; all fields use exact matching.
type Filters struct {
	Status           *string `json:"status,omitempty"`
	AutomatedOutcome *string `json:"automated_outcome,omitempty"`
	FinalOutcome     *string `json:"final_outcome,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("AutomatedOutcome", f.AutomatedOutcome).
		WhereEquals("FinalOutcome", f.FinalOutcome)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if ao := values.Get("automated_outcome"); ao != "" {
		f.AutomatedOutcome = &ao
	}

	if fo := values.Get("final_outcome"); fo != "" {
		f.FinalOutcome = &fo
	}

	return f
}

func scanCandidate(s repository.Scanner) (Candidate, error) {
	var c Candidate
	var scorecard []byte

	err := s.Scan(
		&c.ID,
		&c.Filename,
		&c.ResumeText,
		&c.JobDescription,
		&scorecard,
		&c.AutomatedOutcome,
		&c.FinalOutcome,
		&c.Status,
		&c.PageCount,
		&c.StorageKey,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}

	if len(scorecard) > 0 {
		if err := json.Unmarshal(scorecard, &c.Scorecard); err != nil {
			return c, err
		}
	}

	return c, nil
}

func scanReview(s repository.Scanner) (Review, error) {
	var r Review
	err := s.Scan(
		&r.ID,
		&r.CandidateID,
		&r.Reviewer,
		&r.Outcome,
		&r.Rationale,
		&r.SubmittedAt,
	)
	return r, err
}
