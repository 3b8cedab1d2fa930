// Package dms is the document management system: it imports files through
// the parser registry into an in-memory, append-only collection and answers
// attribute searches over it.
package dms

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/docmanager/backend/internal/models"
	"github.com/docmanager/backend/internal/parser"
	"github.com/docmanager/backend/internal/search"
)

// ErrFileNotFound is returned when a path does not name a readable file.
var ErrFileNotFound = errors.New("file not found")

// System holds the imported documents of one process.
type System struct {
	mu        sync.RWMutex
	registry  *parser.Registry
	documents []*models.Document
}

// NewSystem creates a System that imports through reg. A nil reg uses the
// built-in letter, report, invoice and image parsers.
func NewSystem(reg *parser.Registry) *System {
	if reg == nil {
		reg = parser.NewRegistry()
	}
	return &System{
		registry:  reg,
		documents: make([]*models.Document, 0),
	}
}

// Registry returns the registry used to select parsers.
func (s *System) Registry() *parser.Registry {
	return s.registry
}

// ImportFile reads the file at path, extracts its attributes and appends the
// resulting document to the collection.
//
// Errors wrap ErrFileNotFound, parser.ErrUnknownFileType or
// parser.ErrMalformedContent.
func (s *System) ImportFile(path string) (*models.Document, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	p, err := s.registry.Resolve(path)
	if err != nil {
		return nil, err
	}

	attrs, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	attrs.Set(models.AttrPath, path)

	doc := models.NewDocument(attrs)

	s.mu.Lock()
	s.documents = append(s.documents, doc)
	s.mu.Unlock()

	return doc, nil
}

// Contents returns the imported documents in import order. The returned
// slice is a copy.
func (s *System) Contents() []*models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// Len returns the number of imported documents.
func (s *System) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// Search returns the documents matching query, in import order.
// Errors wrap search.ErrInvalidQuery.
func (s *System) Search(query string) ([]*models.Document, error) {
	q, err := search.Parse(query)
	if err != nil {
		return nil, err
	}
	return q.Filter(s.Contents()), nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrFileNotFound, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	return content, nil
}
