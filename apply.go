package jsonchange

import (
	"encoding/json"
	"fmt"
	"io"
)

// Apply applies changes to a document in order, returning a new modified
// document. The original document is not changed and shares no container
// with the result. Application is best-effort: changes whose paths are
// malformed or do not match the document are skipped, never raised as
// errors, so a loosely validated change list can always be applied.
func Apply(doc any, changes ...Change) any {
	return ApplyInPlace(Clone(doc), changes...)
}

// ApplyInPlace applies changes to a document in-place and returns it.
// WARNING: This function modifies the input document. The returned value
// must be used in place of the argument, since a change against an array
// root reallocates it.
func ApplyInPlace(doc any, changes ...Change) any {
	for _, change := range changes {
		if change.Delete {
			doc = deletePath(doc, change.Path)
		} else {
			doc = setPath(doc, change.Path, change.Value)
		}
	}
	return doc
}

// DecodeChanges decodes a JSON array of change records.
func DecodeChanges(data []byte) (Changeset, error) {
	var cs Changeset
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("failed to decode changes: %w", err)
	}
	return cs, nil
}

// ApplyJSON applies a JSON-encoded change list to a JSON document, returning
// the modified document as JSON.
func ApplyJSON(docJSON, changesJSON []byte) ([]byte, error) {
	cs, err := DecodeChanges(changesJSON)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	result, err := json.Marshal(ApplyInPlace(doc, cs...))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return result, nil
}

// ApplyStream reads a JSON document from a reader, applies the changes and
// writes the modified document to a writer. This is more memory-efficient
// for large documents than Apply, as the decoded document is mutated
// directly instead of being cloned.
func ApplyStream(reader io.Reader, writer io.Writer, changes ...Change) error {
	var doc any
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	encoder := json.NewEncoder(writer)
	return encoder.Encode(ApplyInPlace(doc, changes...))
}
