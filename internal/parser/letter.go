package parser

import (
	"strings"

	"github.com/docmanager/backend/internal/models"
)

const (
	salutationPrefix = "Dear "
	signOffPrefix    = "regards,"
)

// LetterParser reads patient letters:
//
//	Dear <patient>
//
//	<address lines>
//
//	<body>
//
//	regards,
//	<signature>
type LetterParser struct{}

// NewLetterParser returns a new LetterParser.
func NewLetterParser() *LetterParser {
	return &LetterParser{}
}

// Name returns the parser name.
func (p *LetterParser) Name() string {
	return "letter"
}

// Parse extracts patient, address and body.
func (p *LetterParser) Parse(content []byte) (*models.Attributes, error) {
	lines, err := splitLines(content)
	if err != nil {
		return nil, err
	}

	patient, i, err := headerValue(lines, salutationPrefix)
	if err != nil {
		return nil, err
	}

	address, i := nextBlock(lines, i)
	if address == "" {
		return nil, malformed("letter has no address block")
	}

	body := textUntil(lines, i, isSignOff)

	attrs := models.NewAttributes()
	attrs.Set(models.AttrType, string(models.TypeLetter))
	attrs.Set(models.AttrPatient, patient)
	attrs.Set(models.AttrAddress, address)
	attrs.Set(models.AttrBody, body)
	return attrs, nil
}

func isSignOff(line string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), signOffPrefix)
}
