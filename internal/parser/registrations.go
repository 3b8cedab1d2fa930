package parser

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Registration binds an extension to a built-in parser by name.
type Registration struct {
	Extension string `json:"extension" yaml:"extension"`
	Parser    string `json:"parser" yaml:"parser"`
}

// RegistrationTable is the YAML layout of an importer table:
//
//	importers:
//	  - extension: txt
//	    parser: report
type RegistrationTable struct {
	Importers []Registration `yaml:"importers"`
}

// LoadRegistrations reads a YAML importer table from a file.
func LoadRegistrations(filePath string) ([]Registration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadRegistrationsFromReader(file)
}

// LoadRegistrationsFromReader reads a YAML importer table from r.
func LoadRegistrationsFromReader(r io.Reader) ([]Registration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var table RegistrationTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding importer table: %w", err)
	}

	for i, reg := range table.Importers {
		if reg.Extension == "" || reg.Parser == "" {
			return nil, fmt.Errorf("importer %d: extension and parser are required", i)
		}
	}
	return table.Importers, nil
}

// Apply registers every entry of regs, in order. Nothing is registered if
// any entry names an unknown parser.
func (r *Registry) Apply(regs []Registration) error {
	resolved := make([]Parser, len(regs))
	for i, reg := range regs {
		p, err := ParserByName(reg.Parser)
		if err != nil {
			return fmt.Errorf("registering %q: %w", reg.Extension, err)
		}
		resolved[i] = p
	}
	for i, reg := range regs {
		r.Register(reg.Extension, resolved[i])
	}
	return nil
}
