// Package compose models docker-compose configurations as open documents
// and implements the transformations applied to them: reading and writing
// YAML, deep merging, relative-path resolution, and namespacing.
package compose

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the parsed form of one compose configuration. Top-level keys
// are service names, except for the reserved "include" and "namespace"
// keys. Service values are open maps so that fields this tool does not
// understand pass through untouched.
type Document map[string]any

// Read parses a compose document from r.
func Read(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if doc == nil {
		doc = make(Document)
	}
	return doc, nil
}

// Write serializes doc to w as YAML. Map keys are emitted in sorted
// order, so output is deterministic for a given document.
func Write(w io.Writer, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Service returns the named service's field map, or nil and false when
// the key is absent or not a mapping.
func (d Document) Service(name string) (map[string]any, bool) {
	svc, ok := d[name].(map[string]any)
	return svc, ok
}
