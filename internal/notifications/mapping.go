package notifications

import (
	"net/url"

	"github.com/talentsift/sift/pkg/query"
	"github.com/talentsift/sift/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "notifications", "n").
	Project("id", "ID").
	Project("candidate_id", "CandidateID").
	Project("outcome", "Outcome").
	Project("recipient", "Recipient").
	Project("subject", "Subject").
	Project("delivery_status", "DeliveryStatus").
	Project("detail", "Detail").
	Project("sent_at", "SentAt")

var defaultSort = query.SortField{
	Field:      "SentAt",
	Descending: true,
}

// Filters contains optional filtering criteria for notification queries.
// Nil fields are ignored; all fields use exact matching.
type Filters struct {
	Outcome        *string `json:"outcome,omitempty"`
	DeliveryStatus *string `json:"delivery_status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Outcome", f.Outcome).
		WhereEquals("DeliveryStatus", f.DeliveryStatus)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if o := values.Get("outcome"); o != "" {
		f.Outcome = &o
	}

	if ds := values.Get("delivery_status"); ds != "" {
		f.DeliveryStatus = &ds
	}

	return f
}

func scanNotification(s repository.Scanner) (Notification, error) {
	var n Notification
	err := s.Scan(
		&n.ID,
		&n.CandidateID,
		&n.Outcome,
		&n.Recipient,
		&n.Subject,
		&n.DeliveryStatus,
		&n.Detail,
		&n.SentAt,
	)
	return n, err
}
