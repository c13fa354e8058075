package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document wraps a raw UI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload bytes.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// IsYAML reports whether the document location carries a YAML extension.
func (d Document) IsYAML() bool {
	loc := d.Location()
	if i := strings.IndexAny(loc, "?#"); i >= 0 {
		loc = loc[:i]
	}
	switch strings.ToLower(path.Ext(loc)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DecodeDocument decodes a JSON or YAML payload into a Payload. YAML input is
// normalised through JSON so both formats share the tolerant element decoder.
// A bare element list is accepted as the payload's ui member.
func DecodeDocument(doc Document) (Payload, error) {
	raw := doc.Raw()
	if len(raw) == 0 {
		return Payload{}, errors.New("schema: document is empty")
	}

	if doc.IsYAML() {
		var generic any
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return Payload{}, fmt.Errorf("schema: decode yaml %q: %w", doc.Location(), err)
		}
		converted, err := json.Marshal(generic)
		if err != nil {
			return Payload{}, fmt.Errorf("schema: convert yaml %q: %w", doc.Location(), err)
		}
		raw = converted
	}

	var payload Payload
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &payload.UI); err != nil {
			return Payload{}, fmt.Errorf("schema: decode %q: %w", doc.Location(), err)
		}
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Payload{}, fmt.Errorf("schema: decode %q: %w", doc.Location(), err)
	}
	return payload, nil
}
