// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import "github.com/labstack/echo/v4"

// DocumentHandler handles document import, listing and search
type DocumentHandler interface {
	HandleImportFile(c echo.Context) error
	HandleUploadDocument(c echo.Context) error
	HandleListDocuments(c echo.Context) error
	HandleListDocumentsMsgpack(c echo.Context) error
	HandleSearch(c echo.Context) error
	HandleListImporters(c echo.Context) error
}

// FileHandler handles uploaded file operations
type FileHandler interface {
	HandleRecentFiles(c echo.Context) error
	HandleGetFile(c echo.Context) error
	HandleDeleteFile(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

var (
	_ DocumentHandler = (*Handler)(nil)
	_ FileHandler     = (*Handler)(nil)
	_ HealthHandler   = (*Handler)(nil)
)
