package api

import (
	"github.com/docmanager/backend/internal/dms"
	"github.com/docmanager/backend/internal/metrics"
	"github.com/docmanager/backend/internal/storage"
	"github.com/rs/zerolog"
)

// Handler handles API requests.
type Handler struct {
	system          *dms.System
	store           storage.Store
	metrics         *metrics.Metrics
	log             zerolog.Logger
	version         string
	allowPathImport bool
}

// NewHandler creates a new API handler. Nil metrics are replaced with a
// private, unexposed set.
func NewHandler(deps *Dependencies) *Handler {
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		system:          deps.System,
		store:           deps.Store,
		metrics:         m,
		log:             deps.Logger.With().Str("component", "api").Logger(),
		version:         deps.Version,
		allowPathImport: deps.AllowPathImport,
	}
}
