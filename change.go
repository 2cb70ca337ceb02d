// Package jsonchange applies ordered, path-addressed set and delete changes
// to JSON-like trees without modifying the original document.
package jsonchange

import (
	"encoding/json"
	"fmt"
)

// Change represents a single edit to a document: a set when Delete is false,
// a delete of the addressed slot when Delete is true. A set value of nil
// writes a JSON null; deletion is signalled by Delete, not by a nil Value.
type Change struct {
	Path   Path
	Value  any
	Delete bool
}

// Set builds a change that writes value at the dotted path.
func Set(path string, value any) Change {
	return Change{Path: ParsePath(path), Value: value}
}

// SetAt builds a change that writes value at the given segments. Segments
// are used verbatim and never split, so keys containing '.' are addressable.
func SetAt(path Path, value any) Change {
	return Change{Path: path, Value: value}
}

// Delete builds a change that removes the slot at the dotted path.
func Delete(path string) Change {
	return Change{Path: ParsePath(path), Delete: true}
}

// DeleteAt builds a change that removes the slot at the given segments.
func DeleteAt(path Path) Change {
	return Change{Path: path, Delete: true}
}

type changeWire struct {
	Path  Path            `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the change as {"path":[...],"value":...}. The value
// member is omitted entirely for deletes; a set of null keeps "value":null.
func (c Change) MarshalJSON() ([]byte, error) {
	w := changeWire{Path: c.Path}
	if !c.Delete {
		raw, err := json.Marshal(c.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal change value: %w", err)
		}
		w.Value = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a change record. An absent value member means
// delete; a present value member, including an explicit null, means set.
func (c *Change) UnmarshalJSON(data []byte) error {
	var w changeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.Path = w.Path
	if w.Value == nil {
		c.Value = nil
		c.Delete = true
		return nil
	}
	c.Delete = false
	return json.Unmarshal(w.Value, &c.Value)
}

// Changeset is an ordered collection of changes. Later changes observe the
// effects of earlier ones.
type Changeset []Change

// Set appends a set change for the dotted path.
func (cs *Changeset) Set(path string, value any) {
	*cs = append(*cs, Set(path, value))
}

// Delete appends a delete change for the dotted path.
func (cs *Changeset) Delete(path string) {
	*cs = append(*cs, Delete(path))
}

// Len returns the number of changes in the set.
func (cs Changeset) Len() int {
	return len(cs)
}

// IsEmpty returns true if the changeset contains no changes.
func (cs Changeset) IsEmpty() bool {
	return len(cs) == 0
}
