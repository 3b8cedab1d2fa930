// handlers_documents.go - Document import, listing and search handlers
package api

import (
	"bytes"
	"encoding/base64"
	"net/http"

	"github.com/docmanager/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

type importRequest struct {
	Path string `json:"path"`
}

type uploadRequest struct {
	Name string `json:"name"`
	Data string `json:"data"` // Base64-encoded file content
}

type documentList struct {
	Query     string             `json:"query,omitempty"`
	Documents []*models.Document `json:"documents"`
	Total     int                `json:"total"`
}

// importFile imports path and records the outcome.
func (h *Handler) importFile(path string) (*models.Document, error) {
	doc, err := h.system.ImportFile(path)
	if err != nil {
		h.metrics.ImportFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		h.log.Warn().Err(err).Str("path", path).Msg("import failed")
		return nil, err
	}

	h.metrics.ImportsTotal.WithLabelValues(string(doc.Type())).Inc()
	h.metrics.DocumentsStored.Set(float64(h.system.Len()))
	h.log.Info().Str("path", path).Str("type", string(doc.Type())).Msg("document imported")
	return doc, nil
}

// HandleImportFile imports a file already present on the server.
func (h *Handler) HandleImportFile(c echo.Context) error {
	if !h.allowPathImport {
		return RespondWithError(c, NewForbiddenError("path import is disabled"))
	}

	var req importRequest
	if err := c.Bind(&req); err != nil {
		return RespondWithError(c, NewBadRequestError("invalid JSON body", err))
	}
	if req.Path == "" {
		return RespondWithError(c, NewValidationError("path"))
	}

	doc, err := h.importFile(req.Path)
	if err != nil {
		return RespondWithError(c, NewDocumentError(err))
	}
	return c.JSON(http.StatusCreated, doc)
}

// HandleUploadDocument accepts a file as base64 JSON, stores it and imports it.
func (h *Handler) HandleUploadDocument(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return RespondWithError(c, NewBadRequestError("invalid JSON body", err))
	}
	if req.Name == "" {
		return RespondWithError(c, NewValidationError("name"))
	}
	if req.Data == "" {
		return RespondWithError(c, NewValidationError("data"))
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return RespondWithError(c, NewBadRequestError("invalid base64 data", err))
	}

	info, err := h.store.Save(req.Name, bytes.NewReader(data))
	if err != nil {
		return RespondWithError(c, NewInternalError("failed to save file", err))
	}
	path, err := h.store.GetFilePath(info.ID)
	if err != nil {
		return RespondWithError(c, NewDocumentError(err))
	}

	doc, err := h.importFile(path)
	if err != nil {
		_ = h.store.SetStatus(info.ID, models.FileStatusRejected)
		return RespondWithError(c, NewDocumentError(err))
	}
	_ = h.store.SetStatus(info.ID, models.FileStatusImported)
	info.Status = models.FileStatusImported

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"file":     info,
		"document": doc,
	})
}

// HandleListDocuments returns every imported document in import order.
func (h *Handler) HandleListDocuments(c echo.Context) error {
	docs := h.system.Contents()
	return c.JSON(http.StatusOK, documentList{Documents: docs, Total: len(docs)})
}

// HandleListDocumentsMsgpack returns the collection encoded as MessagePack.
func (h *Handler) HandleListDocumentsMsgpack(c echo.Context) error {
	docs := h.system.Contents()

	attrs := make([]map[string]string, len(docs))
	for i, doc := range docs {
		attrs[i] = doc.Attributes().Map()
	}

	data, err := msgpack.Marshal(map[string]interface{}{
		"documents": attrs,
		"total":     len(docs),
	})
	if err != nil {
		return RespondWithError(c, NewInternalError("failed to encode msgpack", err))
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleSearch filters the collection with the query parameter q.
func (h *Handler) HandleSearch(c echo.Context) error {
	query := c.QueryParam("q")

	docs, err := h.system.Search(query)
	if err != nil {
		h.metrics.SearchesTotal.WithLabelValues("invalid").Inc()
		return RespondWithError(c, NewDocumentError(err))
	}

	h.metrics.SearchesTotal.WithLabelValues("ok").Inc()
	h.metrics.SearchResultsTotal.Add(float64(len(docs)))
	return c.JSON(http.StatusOK, documentList{Query: query, Documents: docs, Total: len(docs)})
}

// HandleListImporters returns the registered file extensions.
func (h *Handler) HandleListImporters(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"extensions": h.system.Registry().Extensions(),
	})
}
