// Package search evaluates attribute queries of the form
// "name:substring,name:substring" against documents.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docmanager/backend/internal/models"
)

// ErrInvalidQuery is returned when a query string cannot be parsed.
var ErrInvalidQuery = errors.New("invalid query")

// Predicate requires the named attribute to contain Substring.
type Predicate struct {
	Attribute string `json:"attribute"`
	Substring string `json:"substring"`
}

// Matches reports whether doc has the attribute and its value contains the substring.
func (p Predicate) Matches(doc *models.Document) bool {
	v, ok := doc.Attribute(p.Attribute)
	return ok && strings.Contains(v, p.Substring)
}

// Query is a conjunction of predicates. The zero Query matches every document.
type Query struct {
	Predicates []Predicate `json:"predicates"`
}

// Parse parses a comma-separated list of name:substring predicates. The first
// ":" of each predicate separates the name from the substring; whitespace in
// the substring is kept as written.
func Parse(query string) (Query, error) {
	if strings.TrimSpace(query) == "" {
		return Query{}, nil
	}

	segments := strings.Split(query, ",")
	q := Query{Predicates: make([]Predicate, 0, len(segments))}
	for i, seg := range segments {
		name, value, ok := strings.Cut(seg, ":")
		if !ok {
			return Query{}, fmt.Errorf("%w: predicate %d %q has no ':'", ErrInvalidQuery, i+1, seg)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return Query{}, fmt.Errorf("%w: predicate %d %q has no attribute name", ErrInvalidQuery, i+1, seg)
		}
		q.Predicates = append(q.Predicates, Predicate{Attribute: name, Substring: value})
	}
	return q, nil
}

// Matches reports whether doc satisfies every predicate.
func (q Query) Matches(doc *models.Document) bool {
	for _, p := range q.Predicates {
		if !p.Matches(doc) {
			return false
		}
	}
	return true
}

// Filter returns the documents matching q, in their original order.
func (q Query) Filter(docs []*models.Document) []*models.Document {
	out := make([]*models.Document, 0, len(docs))
	for _, doc := range docs {
		if q.Matches(doc) {
			out = append(out, doc)
		}
	}
	return out
}

// String renders the query in its textual form.
func (q Query) String() string {
	parts := make([]string, len(q.Predicates))
	for i, p := range q.Predicates {
		parts[i] = p.Attribute + ":" + p.Substring
	}
	return strings.Join(parts, ",")
}
