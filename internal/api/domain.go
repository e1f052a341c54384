package api

import (
	"github.com/talentsift/sift/internal/candidates"
	"github.com/talentsift/sift/internal/evaluation"
	"github.com/talentsift/sift/internal/extraction"
	"github.com/talentsift/sift/internal/notifications"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Candidates    candidates.System
	Notifications notifications.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	extractor := extraction.New(&runtime.Extraction, runtime.Logger)
	evaluator := evaluation.New(&runtime.Evaluation, runtime.Logger)

	notificationsSystem := notifications.New(
		runtime.Database.Connection(),
		runtime.Mailer,
		runtime.Logger,
		runtime.Pagination,
	)

	candidatesSystem := candidates.New(
		runtime.Database.Connection(),
		runtime.Storage,
		extractor,
		evaluator,
		notificationsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Candidates:    candidatesSystem,
		Notifications: notificationsSystem,
	}
}
