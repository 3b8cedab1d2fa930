// Package models contains domain types for the document management backend.
package models

import (
	"bytes"
	"encoding/json"
)

// Attribute names produced by the importers.
const (
	AttrPath    = "path"
	AttrType    = "type"
	AttrPatient = "patient"
	AttrAddress = "address"
	AttrBody    = "body"
	AttrAmount  = "amount"
	AttrWidth   = "width"
	AttrHeight  = "height"
)

// DocumentType is the format tag stored under AttrType.
type DocumentType string

const (
	TypeLetter  DocumentType = "LETTER"
	TypeReport  DocumentType = "REPORT"
	TypeInvoice DocumentType = "INVOICE"
	TypeImage   DocumentType = "IMAGE"
)

// Attributes is an ordered mapping of attribute name to string value.
// Names keep the order in which they were first set.
type Attributes struct {
	names  []string
	values map[string]string
}

// NewAttributes creates an empty attribute store.
func NewAttributes() *Attributes {
	return &Attributes{
		names:  make([]string, 0, 8),
		values: make(map[string]string, 8),
	}
}

// Set stores value under name. A repeated name keeps its original position.
func (a *Attributes) Set(name, value string) {
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// Get returns the value stored under name and whether it is present.
func (a *Attributes) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Names returns the attribute names in insertion order.
func (a *Attributes) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.names)
}

// Clone returns a deep copy.
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{
		names:  make([]string, len(a.names)),
		values: make(map[string]string, len(a.values)),
	}
	copy(c.names, a.names)
	for k, v := range a.values {
		c.values[k] = v
	}
	return c
}

// Map returns the attributes as a plain map.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, len(a.values))
	for k, v := range a.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the attributes as a JSON object in insertion order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range a.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(a.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
