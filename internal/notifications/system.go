package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentsift/sift/pkg/pagination"
)

// System defines the public contract for notification domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Notification], error)

	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Notification, error)

	// Notify renders the outcome template, attempts delivery, and records
	// exactly one notification with delivery status SENT or FAILED.
	// Delivery failure is captured in the record, not returned as an error.
	Notify(ctx context.Context, candidateID uuid.UUID, outcome string) (*Notification, error)
}
