package parser

import "errors"

var (
	// ErrUnknownFileType is returned when no parser is registered for a file's extension.
	ErrUnknownFileType = errors.New("unknown file type")

	// ErrMalformedContent is returned when file content does not have the structure a parser expects.
	ErrMalformedContent = errors.New("malformed content")
)
