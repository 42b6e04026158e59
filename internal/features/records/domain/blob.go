package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Blob is a loosely-typed JSON object as stored on an order record.
// A nil Blob means the field is absent.
type Blob map[string]any

// asBlob reports whether v is a JSON object and returns it as a Blob.
func asBlob(v any) (Blob, bool) {
	switch m := v.(type) {
	case Blob:
		return m, m != nil
	case map[string]any:
		return Blob(m), m != nil
	default:
		return nil, false
	}
}

// Object returns the nested object under key, or nil.
func (b Blob) Object(key string) Blob {
	if b == nil {
		return nil
	}
	obj, _ := asBlob(b[key])
	return obj
}

// At walks a path of object keys and returns the value at its end.
// A numeric segment indexes into an array.
func (b Blob) At(path ...string) (any, bool) {
	var cur any = b
	if b == nil {
		return nil, false
	}
	for _, seg := range path {
		switch node := cur.(type) {
		case Blob, map[string]any:
			obj, _ := asBlob(node)
			next, ok := obj[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		case []map[string]any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Descend returns the object at path, or nil when any segment is missing or not an object.
func (b Blob) Descend(path ...string) Blob {
	if len(path) == 0 {
		return b
	}
	v, ok := b.At(path...)
	if !ok {
		return nil
	}
	obj, _ := asBlob(v)
	return obj
}

// String returns the scalar at path as a string, skipping empty values.
func (b Blob) String(path ...string) (string, bool) {
	v, ok := b.At(path...)
	if !ok {
		return "", false
	}
	s, ok := scalarString(v)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// scalarString coerces a JSON scalar into its string form.
// Objects, arrays and nil are not scalars.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// normalizedText lowercases and trims a value for comparisons.
func normalizedText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
