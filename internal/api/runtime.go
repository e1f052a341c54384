package api

import (
	"github.com/talentsift/sift/internal/config"
	"github.com/talentsift/sift/internal/evaluation"
	"github.com/talentsift/sift/internal/extraction"
	"github.com/talentsift/sift/internal/infrastructure"
	"github.com/talentsift/sift/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Evaluation evaluation.Config
	Extraction extraction.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Mailer:    infra.Mailer,
		},
		Pagination: cfg.API.Pagination,
		Evaluation: cfg.Evaluation,
		Extraction: cfg.Extraction,
	}
}
