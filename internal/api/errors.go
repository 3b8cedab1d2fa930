// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/docmanager/backend/internal/dms"
	"github.com/docmanager/backend/internal/parser"
	"github.com/docmanager/backend/internal/search"
	"github.com/docmanager/backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewValidationError creates a 400 validation error for a specific field
func NewValidationError(field string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("validation failed for field: %s", field),
	}
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(resource string, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewForbiddenError creates a 403 Forbidden error
func NewForbiddenError(message string) *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Code:    "FORBIDDEN",
		Message: message,
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewDocumentError maps import, search and storage failures to API errors.
func NewDocumentError(err error) *APIError {
	switch {
	case errors.Is(err, dms.ErrFileNotFound):
		return &APIError{
			Status:  http.StatusNotFound,
			Code:    "FILE_NOT_FOUND",
			Message: "no readable file at the given path",
			Details: err.Error(),
		}
	case errors.Is(err, parser.ErrUnknownFileType):
		return &APIError{
			Status:  http.StatusUnsupportedMediaType,
			Code:    "UNKNOWN_FILE_TYPE",
			Message: "no importer is registered for this file extension",
			Details: err.Error(),
		}
	case errors.Is(err, parser.ErrMalformedContent):
		return &APIError{
			Status:  http.StatusUnprocessableEntity,
			Code:    "MALFORMED_CONTENT",
			Message: "file content does not match its format",
			Details: err.Error(),
		}
	case errors.Is(err, search.ErrInvalidQuery):
		return &APIError{
			Status:  http.StatusBadRequest,
			Code:    "INVALID_QUERY",
			Message: "search query is malformed",
			Details: err.Error(),
		}
	case errors.Is(err, storage.ErrNotFound):
		return &APIError{
			Status:  http.StatusNotFound,
			Code:    "NOT_FOUND",
			Message: "file not found",
			Details: err.Error(),
		}
	default:
		return NewInternalError("unexpected error", err)
	}
}

// failureReason is the metrics label for a failed import.
func failureReason(err error) string {
	switch {
	case errors.Is(err, dms.ErrFileNotFound):
		return "file_not_found"
	case errors.Is(err, parser.ErrUnknownFileType):
		return "unknown_file_type"
	case errors.Is(err, parser.ErrMalformedContent):
		return "malformed_content"
	default:
		return "other"
	}
}

// NewErrorHandler returns an Echo error handler rendering APIError JSON.
// Usage: e.HTTPErrorHandler = api.NewErrorHandler(false)
func NewErrorHandler(showDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *APIError
		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &apiErr):
		case errors.As(err, &httpErr):
			apiErr = &APIError{
				Status:  httpErr.Code,
				Code:    "HTTP_ERROR",
				Message: fmt.Sprintf("%v", httpErr.Message),
			}
		default:
			apiErr = &APIError{
				Status:  http.StatusInternalServerError,
				Code:    "UNKNOWN_ERROR",
				Message: "An unexpected error occurred",
			}
			if showDetails {
				apiErr.Details = err.Error()
			}
		}

		c.JSON(apiErr.Status, apiErr)
	}
}

// RespondWithError is a helper to respond with an APIError
func RespondWithError(c echo.Context, err *APIError) error {
	return c.JSON(err.Status, err)
}
