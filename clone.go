package jsonchange

// Clone returns a deep copy of a JSON-like tree. Every object and array
// reachable from the result is freshly allocated; primitives are copied by
// value. Values that are not map[string]any or []any are returned as-is.
func Clone(v any) any {
	switch c := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, val := range c {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(c))
		for i, val := range c {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}
