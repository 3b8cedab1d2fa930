// routes.go - Route registration helpers
package api

import (
	"github.com/docmanager/backend/internal/dms"
	"github.com/docmanager/backend/internal/metrics"
	"github.com/docmanager/backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	System          *dms.System
	Store           storage.Store
	Metrics         *metrics.Metrics
	Logger          zerolog.Logger
	Version         string
	AllowPathImport bool
	ExposeMetrics   bool
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, deps *Dependencies) *Handler {
	h := NewHandler(deps)

	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", h.HandleHealth)

	// Importers
	apiGroup.GET("/importers", h.HandleListImporters)

	// Documents
	docs := apiGroup.Group("/documents")
	docs.GET("", h.HandleListDocuments)
	docs.GET("/msgpack", h.HandleListDocumentsMsgpack)
	docs.GET("/search", h.HandleSearch)
	docs.POST("/import", h.HandleImportFile)
	docs.POST("/upload", h.HandleUploadDocument)

	// Uploaded files
	files := apiGroup.Group("/files")
	files.GET("/recent", h.HandleRecentFiles)
	files.GET("/:id", h.HandleGetFile)
	files.DELETE("/:id", h.HandleDeleteFile)

	if deps.ExposeMetrics {
		e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}

	return h
}

// SetupMiddleware configures common middleware
func SetupMiddleware(e *echo.Echo, showErrorDetails bool) {
	e.HTTPErrorHandler = NewErrorHandler(showErrorDetails)
}
