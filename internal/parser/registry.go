package parser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry maps file extensions to the parser responsible for them.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a registry with the built-in parsers registered.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register("letter", NewLetterParser())
	r.Register("report", NewReportParser())
	r.Register("invoice", NewInvoiceParser())
	image := NewImageParser()
	r.Register("jpg", image)
	r.Register("jpeg", image)
	return r
}

// NewEmptyRegistry creates a registry with no parsers.
func NewEmptyRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register associates ext with p. A later registration for the same
// extension replaces the earlier one.
func (r *Registry) Register(ext string, p Parser) {
	r.parsers[normalizeExt(ext)] = p
}

// Resolve returns the parser for filePath's extension.
func (r *Registry) Resolve(filePath string) (Parser, error) {
	ext := Extension(filePath)
	if p, ok := r.parsers[ext]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filePath)
}

// Extensions returns a sorted list of registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.parsers))
	for ext := range r.parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extension returns the lookup key for filePath: the text after the final
// "." of the base name, or the whole base name if it has none.
func Extension(filePath string) string {
	base := filepath.Base(filePath)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[i+1:]
	}
	return normalizeExt(base)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// builtins lists the parsers that can be named in a registration table.
func builtins() []Parser {
	return []Parser{
		NewLetterParser(),
		NewReportParser(),
		NewInvoiceParser(),
		NewImageParser(),
	}
}

// ParserByName returns a built-in parser by its name.
func ParserByName(name string) (Parser, error) {
	name = strings.ToLower(name)
	for _, p := range builtins() {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("parser not found: %s", name)
}
