package candidates

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/talentsift/sift/internal/evaluation"
	"github.com/talentsift/sift/internal/extraction"
	"github.com/talentsift/sift/internal/notifications"
	"github.com/talentsift/sift/pkg/pagination"
	"github.com/talentsift/sift/pkg/query"
	"github.com/talentsift/sift/pkg/repository"
	"github.com/talentsift/sift/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	extractor  extraction.System
	evaluator  evaluation.System
	notifier   notifications.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a candidate repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	extractor extraction.System,
	evaluator evaluation.System,
	notifier notifications.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		extractor:  extractor,
		evaluator:  evaluator,
		notifier:   notifier,
		logger:     logger.With("system", "candidates"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Candidate], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ResumeText", "JobDescription", "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count candidates: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCandidate)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

// Stats always reflects the full candidate set, never a filtered view.
func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	q := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'NEEDS_HUMAN_REVIEW'),
		       COUNT(*) FILTER (WHERE status = 'FINALIZED')
		FROM candidates`

	var s Stats
	if err := r.db.QueryRowContext(ctx, q).Scan(&s.Total, &s.PendingReview, &s.Finalized); err != nil {
		return nil, fmt.Errorf("count candidate statuses: %w", err)
	}

	return &s, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCandidate)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Candidate, error) {
	resumeText := r.extractor.Extract(ctx, cmd.Data)

	scorecard, err := r.evaluator.Evaluate(ctx, resumeText, cmd.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEvaluationFailed, err)
	}

	outcome := Decide(scorecard)

	status := StatusFinalized
	var finalOutcome *string
	if outcome == OutcomeReview {
		status = StatusPendingReview
	} else {
		finalOutcome = &outcome
	}

	scorecardJSON, err := json.Marshal(scorecard)
	if err != nil {
		return nil, fmt.Errorf("marshal scorecard: %w", err)
	}

	id := uuid.New()
	key := buildStorageKey(id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload resume blob: %w", err)
	}

	q := `
		INSERT INTO candidates(
			id, filename, resume_text, job_description, scorecard,
			automated_outcome, final_outcome, status, page_count, storage_key
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, filename, resume_text, job_description, scorecard,
		          automated_outcome, final_outcome, status, page_count,
		          storage_key, created_at, updated_at`

	insertArgs := []any{
		id,
		cmd.Filename,
		resumeText,
		cmd.JobDescription,
		scorecardJSON,
		outcome,
		finalOutcome,
		status,
		cmd.PageCount,
		key,
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Candidate, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanCandidate)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("candidate created",
		"id", c.ID,
		"automated_outcome", c.AutomatedOutcome,
		"status", c.Status,
	)

	if c.Status == StatusFinalized {
		r.notify(ctx, c.ID, outcome)
	}

	return &c, nil
}

func (r *repo) SubmitReview(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Candidate, error) {
	if !ValidReviewOutcome(cmd.Outcome) {
		return nil, ErrInvalidOutcome
	}

	finalizeQ := `
		UPDATE candidates
		SET final_outcome = $1, status = 'FINALIZED', updated_at = NOW()
		WHERE id = $2 AND status = 'NEEDS_HUMAN_REVIEW'
		RETURNING id, filename, resume_text, job_description, scorecard,
		          automated_outcome, final_outcome, status, page_count,
		          storage_key, created_at, updated_at`

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Candidate, error) {
		cand, err := repository.QueryOne(ctx, tx, finalizeQ, []any{cmd.Outcome, id}, scanCandidate)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				var exists bool
				if probeErr := tx.QueryRowContext(
					ctx,
					"SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)",
					id,
				).Scan(&exists); probeErr != nil {
					return Candidate{}, probeErr
				}
				if !exists {
					return Candidate{}, ErrNotFound
				}
				return Candidate{}, ErrNotPending
			}
			return Candidate{}, err
		}

		insertQ := `
			INSERT INTO reviews(candidate_id, reviewer, outcome, rationale)
			VALUES ($1, $2, $3, $4)`
		if err := repository.ExecExpectOne(ctx, tx, insertQ, id, cmd.Reviewer, cmd.Outcome, cmd.Rationale); err != nil {
			return Candidate{}, fmt.Errorf("insert review: %w", err)
		}

		return cand, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("review submitted",
		"id", c.ID,
		"reviewer", cmd.Reviewer,
		"final_outcome", cmd.Outcome,
	)

	r.notify(ctx, c.ID, cmd.Outcome)

	return &c, nil
}

func (r *repo) DownloadResume(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Candidate, error) {
	c, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := r.storage.Download(ctx, c.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("download resume blob: %w", err)
	}

	return reader, c, nil
}

func (r *repo) ListReviews(ctx context.Context, id uuid.UUID) ([]Review, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	qb := query.NewBuilder(reviewProjection, reviewSort).WhereEquals("CandidateID", id)
	q, args := qb.Build()

	reviews, err := repository.QueryMany(ctx, r.db, q, args, scanReview)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	return reviews, nil
}

// notify records a notification for a finalized candidate. Delivery
// failures are captured in the notification record and never escalate
// to the caller.
func (r *repo) notify(ctx context.Context, id uuid.UUID, outcome string) {
	if _, err := r.notifier.Notify(ctx, id, outcome); err != nil {
		r.logger.Warn("notification dispatch failed", "candidate_id", id, "error", err)
	}
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("resumes/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "resume"
	}
	return url.PathEscape(name)
}
