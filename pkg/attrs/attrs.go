// Package attrs inspects flattened slog-style attribute lists, a
// [key1, value1, key2, value2, ...] slice, so tests can assert on structured
// log fields without depending on a handler's output format.
package attrs

// ExtractString returns the string value following the first occurrence of
// key. Missing keys, trailing keys without a value, and non-string values all
// yield "".
func ExtractString(attrs []any, key string) string {
	for i := 0; i+1 < len(attrs); i += 2 {
		k, ok := attrs[i].(string)
		if !ok || k != key {
			continue
		}
		v, _ := attrs[i+1].(string)
		return v
	}
	return ""
}
