package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/docmanager/backend/internal/models"
)

// Parser turns the raw bytes of one file format into an attribute store.
type Parser interface {
	// Name returns the unique name of the parser.
	Name() string
	// Parse extracts attributes from content. It fails with ErrMalformedContent
	// when content does not match the format.
	Parse(content []byte) (*models.Attributes, error)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedContent, fmt.Sprintf(format, args...))
}

// Common utilities for the line-oriented formats

// splitLines validates UTF-8, normalizes CRLF/CR to LF and splits into lines.
func splitLines(content []byte) ([]string, error) {
	if !utf8.Valid(content) {
		return nil, malformed("content is not valid UTF-8")
	}
	text := string(content)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n"), nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// skipBlank returns the index of the first non-blank line at or after i.
func skipBlank(lines []string, i int) int {
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	return i
}

// headerValue reads the first non-blank line, which must start with prefix,
// and returns the text after it along with the index of the following line.
func headerValue(lines []string, prefix string) (string, int, error) {
	i := skipBlank(lines, 0)
	if i >= len(lines) {
		return "", 0, malformed("empty document")
	}
	line := strings.TrimSpace(lines[i])
	if !strings.HasPrefix(line, prefix) {
		return "", 0, malformed("expected line starting with %q, got %q", prefix, line)
	}
	value := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	value = strings.TrimSpace(strings.TrimSuffix(value, ","))
	if value == "" {
		return "", 0, malformed("missing value after %q", prefix)
	}
	return value, i + 1, nil
}

// nextBlock returns the blank-line-delimited block starting at or after i,
// joined with newlines, and the index just past it.
func nextBlock(lines []string, i int) (string, int) {
	i = skipBlank(lines, i)
	start := i
	for i < len(lines) && !isBlank(lines[i]) {
		i++
	}
	block := make([]string, 0, i-start)
	for _, l := range lines[start:i] {
		block = append(block, strings.TrimRightFunc(l, isSpace))
	}
	return strings.Join(block, "\n"), i
}

// textUntil joins lines from i up to (not including) the first line for which
// stop returns true, trimming surrounding whitespace from the result.
func textUntil(lines []string, i int, stop func(string) bool) string {
	end := i
	for end < len(lines) {
		if stop != nil && stop(lines[end]) {
			break
		}
		end++
	}
	if i >= end {
		return ""
	}
	return strings.TrimSpace(strings.Join(lines[i:end], "\n"))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
