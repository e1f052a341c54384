package api

import (
	"net/http"

	"github.com/talentsift/sift/internal/config"
	"github.com/talentsift/sift/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Candidates.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Notifications.Handler().Routes(),
	)
}
