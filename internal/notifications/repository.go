package notifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talentsift/sift/pkg/mailer"
	"github.com/talentsift/sift/pkg/pagination"
	"github.com/talentsift/sift/pkg/query"
	"github.com/talentsift/sift/pkg/repository"
)

type repo struct {
	db         *sql.DB
	mail       mailer.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a notification repository implementing the System interface.
func New(
	db *sql.DB,
	mail mailer.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		mail:       mail,
		logger:     logger.With("system", "notifications"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Notification], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Subject", "Recipient")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Notification, error) {
	if err := r.candidateExists(ctx, candidateID); err != nil {
		return nil, err
	}

	qb := query.NewBuilder(projection, defaultSort).WhereEquals("CandidateID", candidateID)
	q, args := qb.Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query candidate notifications: %w", err)
	}

	return items, nil
}

func (r *repo) Notify(ctx context.Context, candidateID uuid.UUID, outcome string) (*Notification, error) {
	if err := r.candidateExists(ctx, candidateID); err != nil {
		return nil, err
	}

	subject, body := render(outcome)
	recipient := r.mail.Recipient()

	status := DeliverySent
	var detail *string

	err := r.mail.Send(ctx, mailer.Message{
		To:      recipient,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		status = DeliveryFailed
		msg := err.Error()
		detail = &msg
		r.logger.Warn("notification delivery failed",
			"candidate_id", candidateID,
			"outcome", outcome,
			"error", err,
		)
	}

	q := `
		INSERT INTO notifications(candidate_id, outcome, recipient, subject, delivery_status, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, candidate_id, outcome, recipient, subject, delivery_status, detail, sent_at`

	insertArgs := []any{candidateID, outcome, recipient, subject, status, detail}

	n, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Notification, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanNotification)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("notification recorded",
		"id", n.ID,
		"candidate_id", candidateID,
		"outcome", outcome,
		"delivery_status", n.DeliveryStatus,
	)
	return &n, nil
}

func (r *repo) candidateExists(ctx context.Context, candidateID uuid.UUID) error {
	var exists bool
	if err := r.db.QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)",
		candidateID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check candidate existence: %w", err)
	}
	if !exists {
		return ErrCandidateNotFound
	}
	return nil
}
