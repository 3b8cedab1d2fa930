package parser

import (
	"regexp"
	"strings"

	"github.com/docmanager/backend/internal/models"
)

const amountPrefix = "Amount:"

// amountRegex matches the monetary token, e.g. "$100".
var amountRegex = regexp.MustCompile(`^\$\d+$`)

// InvoiceParser reads invoices addressed to a patient with an "Amount: $<digits>" line.
type InvoiceParser struct{}

// NewInvoiceParser returns a new InvoiceParser.
func NewInvoiceParser() *InvoiceParser {
	return &InvoiceParser{}
}

// Name returns the parser name.
func (p *InvoiceParser) Name() string {
	return "invoice"
}

// Parse extracts patient and amount. The amount keeps its currency symbol.
func (p *InvoiceParser) Parse(content []byte) (*models.Attributes, error) {
	lines, err := splitLines(content)
	if err != nil {
		return nil, err
	}

	patient, i, err := headerValue(lines, salutationPrefix)
	if err != nil {
		return nil, err
	}

	amount := ""
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, amountPrefix) {
			amount = strings.TrimSpace(strings.TrimPrefix(line, amountPrefix))
			break
		}
	}
	if amount == "" {
		return nil, malformed("invoice has no %q line", amountPrefix)
	}
	if !amountRegex.MatchString(amount) {
		return nil, malformed("invalid amount %q", amount)
	}

	attrs := models.NewAttributes()
	attrs.Set(models.AttrType, string(models.TypeInvoice))
	attrs.Set(models.AttrPatient, patient)
	attrs.Set(models.AttrAmount, amount)
	return attrs, nil
}
