package jsonchange

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/wI2L/jsondiff"
)

// DiffJSON computes an RFC 6902 patch that transforms sourceJSON into
// targetJSON, for interop with standard JSON Patch tooling.
func DiffJSON(sourceJSON, targetJSON []byte) (json.RawMessage, error) {
	deltaOperations, err := jsondiff.CompareJSON(sourceJSON, targetJSON)
	if err != nil {
		return nil, err
	}

	return json.Marshal(deltaOperations)
}

// ApplyPatchJSON applies an RFC 6902 patch to a JSON document. Unlike the
// native change format, RFC 6902 application is strict: an operation whose
// path does not match the document is an error, and move/copy/test
// operations are supported.
func ApplyPatchJSON(sourceJSON, patchJSON []byte) (json.RawMessage, error) {
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}

	return patch.Apply(sourceJSON)
}
