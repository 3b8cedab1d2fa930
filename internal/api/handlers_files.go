// handlers_files.go - Uploaded file management handlers
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultRecentLimit = 20

// HandleRecentFiles lists the most recently uploaded files.
func (h *Handler) HandleRecentFiles(c echo.Context) error {
	limit := defaultRecentLimit
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return RespondWithError(c, NewValidationError("limit"))
		}
		limit = n
	}

	files, err := h.store.List(limit)
	if err != nil {
		return RespondWithError(c, NewInternalError("failed to list files", err))
	}
	return c.JSON(http.StatusOK, files)
}

// HandleGetFile returns the metadata of an uploaded file.
func (h *Handler) HandleGetFile(c echo.Context) error {
	info, err := h.store.Get(c.Param("id"))
	if err != nil {
		return RespondWithError(c, NewDocumentError(err))
	}
	return c.JSON(http.StatusOK, info)
}

// HandleDeleteFile removes an uploaded file. Documents imported from it remain.
func (h *Handler) HandleDeleteFile(c echo.Context) error {
	if err := h.store.Delete(c.Param("id")); err != nil {
		return RespondWithError(c, NewDocumentError(err))
	}
	return c.NoContent(http.StatusNoContent)
}
