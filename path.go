package jsonchange

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/agentflare-ai/jsonpointer"
)

// Path is an ordered sequence of segments locating a slot in a document.
// Each segment selects a key in an object or, when the current container is
// an array, an index. An empty path addresses nothing.
type Path []string

// ParsePath splits a dotted path into segments. The empty string yields the
// empty path.
func ParsePath(path string) Path {
	if path == "" {
		return nil
	}
	return Path(strings.Split(path, "."))
}

// FromPointer converts an RFC 6901 JSON Pointer into a Path.
func FromPointer(ptr string) (Path, error) {
	p, err := jsonpointer.New(ptr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON pointer %q: %w", ptr, err)
	}
	path := make(Path, len(p))
	for i, token := range p {
		path[i] = string(token)
	}
	return path, nil
}

// String renders the path in dotted form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// UnmarshalJSON accepts either a dotted string, which is split on '.', or an
// array of segments, which is used verbatim.
func (p *Path) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParsePath(s)
		return nil
	}
	var segments []string
	if err := json.Unmarshal(data, &segments); err != nil {
		return fmt.Errorf("path must be a string or an array of segments: %w", err)
	}
	*p = Path(segments)
	return nil
}

// Get walks path from doc and returns the value it addresses. The boolean
// reports whether the full path resolved to a present slot. A numeric-looking
// segment is an index only when the container at that point is an array;
// against an object it is an ordinary key.
func Get(doc any, path Path) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	current := doc
	for _, segment := range path {
		switch c := current.(type) {
		case map[string]any:
			v, ok := c[segment]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			i, ok := arrayIndex(segment, len(c))
			if !ok {
				return nil, false
			}
			current = c[i]
		default:
			return nil, false
		}
	}
	return current, true
}

// parseIndex parses a segment as an array index, following the RFC 6901
// index syntax: decimal digits, no sign, no leading zeros.
func parseIndex(segment string) (int, bool) {
	idx, err := jsonpointer.ParseArrayIndex(segment)
	// math.MaxInt32 caps how far a write may pad an array.
	if err != nil || idx > math.MaxInt32 {
		return 0, false
	}
	return int(idx), true
}

func arrayIndex(segment string, length int) (int, bool) {
	i, ok := parseIndex(segment)
	if !ok || i >= length {
		return 0, false
	}
	return i, true
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// setPath writes value at path inside node, creating missing intermediate
// containers, and returns node (reallocated when an array had to grow).
// Missing or non-container intermediates always become objects; a numeric
// segment indexes only an existing array. Writing past the end of an array
// extends it, padding the gap with nulls. Invalid paths leave node unchanged.
func setPath(node any, path Path, value any) any {
	if len(path) == 0 {
		return node
	}
	segment, rest := path[0], path[1:]
	switch c := node.(type) {
	case map[string]any:
		if len(rest) == 0 {
			c[segment] = value
			return c
		}
		child, ok := c[segment]
		if !ok || !isContainer(child) {
			child = map[string]any{}
		}
		c[segment] = setPath(child, rest, value)
		return c
	case []any:
		i, ok := parseIndex(segment)
		if !ok {
			return c
		}
		if i >= len(c) {
			c = append(c, make([]any, i-len(c)+1)...)
		}
		if len(rest) == 0 {
			c[i] = value
			return c
		}
		if !isContainer(c[i]) {
			c[i] = map[string]any{}
		}
		c[i] = setPath(c[i], rest, value)
		return c
	default:
		return node
	}
}

// deletePath removes the slot at path inside node and returns node
// (reallocated when the root itself is an array that shrank). Removing an
// array element shifts later elements down by one. Paths that do not resolve
// to a present slot leave node unchanged.
func deletePath(node any, path Path) any {
	if len(path) == 0 {
		return node
	}
	segment, rest := path[0], path[1:]
	switch c := node.(type) {
	case map[string]any:
		if len(rest) == 0 {
			delete(c, segment)
			return c
		}
		child, ok := c[segment]
		if !ok {
			return c
		}
		c[segment] = deletePath(child, rest)
		return c
	case []any:
		i, ok := arrayIndex(segment, len(c))
		if !ok {
			return c
		}
		if len(rest) == 0 {
			return append(c[:i], c[i+1:]...)
		}
		c[i] = deletePath(c[i], rest)
		return c
	default:
		return node
	}
}
