package models

import "encoding/json"

// Document is an imported file and the attributes extracted from it.
// A Document never changes after it has been created.
type Document struct {
	attrs *Attributes
}

// NewDocument creates a Document holding a copy of attrs.
func NewDocument(attrs *Attributes) *Document {
	return &Document{attrs: attrs.Clone()}
}

// Attribute returns the named attribute and whether the document has it.
func (d *Document) Attribute(name string) (string, bool) {
	return d.attrs.Get(name)
}

// Path returns the source file path.
func (d *Document) Path() string {
	v, _ := d.attrs.Get(AttrPath)
	return v
}

// Type returns the document's format tag.
func (d *Document) Type() DocumentType {
	v, _ := d.attrs.Get(AttrType)
	return DocumentType(v)
}

// Attributes returns a copy of the document's attributes.
func (d *Document) Attributes() *Attributes {
	return d.attrs.Clone()
}

// MarshalJSON encodes the document as {"attributes": {...}}.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Attributes *Attributes `json:"attributes"`
	}{d.attrs})
}
