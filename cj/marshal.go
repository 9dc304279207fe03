package cj

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// SerializationError reports a document that violates the Collection+JSON
// structural invariants and therefore cannot be written to the wire.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("collection+json: %s", e.Reason)
}

// Validate checks the structural invariants that Marshal enforces:
// the version constant, non-empty link rels, item href uniqueness, and the
// mutual exclusivity of the error variant with links/items.
func (d *CollectionJSON) Validate() error {
	c := &d.Collection

	if c.Version != Version {
		return &SerializationError{Reason: fmt.Sprintf("version must be %q, got %q", Version, c.Version)}
	}

	if c.Error != nil && (len(c.Links) > 0 || len(c.Items) > 0) {
		return &SerializationError{Reason: "error and links/items are mutually exclusive"}
	}

	for _, l := range c.Links {
		if l.Rel == "" {
			return &SerializationError{Reason: fmt.Sprintf("link %q has empty rel", l.Href)}
		}
	}

	seen := make(map[string]struct{}, len(c.Items))
	for _, it := range c.Items {
		if _, dup := seen[it.Href]; dup {
			return &SerializationError{Reason: fmt.Sprintf("duplicate item href %q", it.Href)}
		}
		seen[it.Href] = struct{}{}
	}

	return nil
}

// Marshal serializes a document to canonical Collection+JSON. The output is
// deterministic for a given document: struct field order is fixed and
// unset optional fields are omitted entirely.
func Marshal(d *CollectionJSON) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling collection: %w", err)
	}
	return data, nil
}

// Unmarshal parses a Collection+JSON document. The result is validated with
// the same rules Marshal applies, so Unmarshal(Marshal(x)) always succeeds
// for a valid x.
func Unmarshal(data []byte) (*CollectionJSON, error) {
	var d CollectionJSON
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing collection: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Equal reports structural equality of two documents. Comparison goes
// through the canonical serialization, so a document built with an int
// value compares equal to its round-tripped form holding a float64.
func Equal(a, b *CollectionJSON) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	da, err := json.Marshal(a)
	if err != nil {
		return false
	}
	db, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(da, db)
}
