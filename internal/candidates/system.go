package candidates

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/talentsift/sift/pkg/pagination"
)

// System defines the public contract for candidate domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Candidate], error)

	Stats(ctx context.Context) (*Stats, error)
	Find(ctx context.Context, id uuid.UUID) (*Candidate, error)
	Create(ctx context.Context, cmd CreateCommand) (*Candidate, error)
	SubmitReview(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Candidate, error)
	ListReviews(ctx context.Context, id uuid.UUID) ([]Review, error)

	// DownloadResume streams the retained resume file for a candidate.
	// The caller must close the reader.
	DownloadResume(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Candidate, error)
}
