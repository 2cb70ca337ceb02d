package jsonchange

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ApplyYAML applies changes to a YAML document, returning the modified
// document re-encoded as YAML. Comments and formatting of the input are not
// preserved.
func ApplyYAML(docYAML []byte, changes ...Change) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(docYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	result, err := yaml.Marshal(ApplyInPlace(doc, changes...))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return result, nil
}
