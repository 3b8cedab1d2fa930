package parser

import "github.com/docmanager/backend/internal/models"

const reportPatientPrefix = "Patient:"

// ReportParser reads clinical reports: a "Patient: <name>" line followed by free text.
type ReportParser struct{}

// NewReportParser returns a new ReportParser.
func NewReportParser() *ReportParser {
	return &ReportParser{}
}

// Name returns the parser name.
func (p *ReportParser) Name() string {
	return "report"
}

// Parse extracts patient and body.
func (p *ReportParser) Parse(content []byte) (*models.Attributes, error) {
	lines, err := splitLines(content)
	if err != nil {
		return nil, err
	}

	patient, i, err := headerValue(lines, reportPatientPrefix)
	if err != nil {
		return nil, err
	}

	attrs := models.NewAttributes()
	attrs.Set(models.AttrType, string(models.TypeReport))
	attrs.Set(models.AttrPatient, patient)
	attrs.Set(models.AttrBody, textUntil(lines, i, nil))
	return attrs, nil
}
