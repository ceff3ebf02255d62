package util

// TrimNulls returns a copy of a decoded JSON value (as produced by
// encoding/json in to an `any`) with empty values removed from every object
// and array, recursively. Empty means nil, "", an empty array or an empty
// object, judged after the value itself has been trimmed. Numbers and
// booleans are never empty.
//
// Object fields named in keep are retained even when empty, since some
// lexicons require them to be present. The input is not modified.
func TrimNulls(val any, keep ...string) any {
	ignore := make(map[string]bool, len(keep))
	for _, k := range keep {
		ignore[k] = true
	}
	return trimNulls(val, ignore)
}

// TrimNullsMap is TrimNulls for a top-level JSON object.
func TrimNullsMap(obj map[string]any, keep ...string) map[string]any {
	if obj == nil {
		return map[string]any{}
	}
	return TrimNulls(obj, keep...).(map[string]any)
}

func trimNulls(val any, ignore map[string]bool) any {
	switch v := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			trimmed := trimNulls(elem, ignore)
			if ignore[k] || !isNull(trimmed) {
				out[k] = trimmed
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, elem := range v {
			trimmed := trimNulls(elem, ignore)
			if !isNull(trimmed) {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return val
	}
}

func isNull(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
