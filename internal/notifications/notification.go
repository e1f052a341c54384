package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Delivery statuses. Every dispatch attempt produces exactly one record.
const (
	DeliverySent   = "SENT"
	DeliveryFailed = "FAILED"
)

// Notification records a single outcome notification attempt.
// Detail carries the delivery error for FAILED records and is nil for
// SENT records.
type Notification struct {
	ID             uuid.UUID `json:"id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	Outcome        string    `json:"outcome"`
	Recipient      string    `json:"recipient"`
	Subject        string    `json:"subject"`
	DeliveryStatus string    `json:"delivery_status"`
	Detail         *string   `json:"detail"`
	SentAt         time.Time `json:"sent_at"`
}

type template struct {
	subject string
	body    string
}

var templates = map[string]template{
	"SHORTLIST": {
		subject: "Interview Invitation - Role",
		body: "Hi,\n\nThe candidate has been shortlisted for the role." +
			" Please reach out to schedule an interview.\n\nRegards,\nHR Team",
	},
	"REJECT": {
		subject: "Application Status - Rejected",
		body: "Hi,\n\nThank you for the application. Unfortunately the candidate" +
			" has not been selected at this time.\n\nRegards,\nHR Team",
	},
}

var fallbackTemplate = template{
	subject: "Action Required",
	body: "Hi,\n\nAdditional information is needed for this candidate." +
		" Please reply with the requested details.\n\nRegards,\nHR Team",
}

// render resolves the message template for an outcome. Unknown outcomes
// fall back to the generic action-required template.
func render(outcome string) (subject, body string) {
	t, ok := templates[outcome]
	if !ok {
		t = fallbackTemplate
	}
	return t.subject, t.body
}
