package domain

import (
	"encoding/json"
	"strings"
)

// NormalizeJSONField turns whatever the store delivered for a *Jsonb field
// into a keyed object, or nil when there is no usable object.
//
// Objects pass through unchanged. Strings (and raw JSON bytes) are parsed;
// a string that itself decodes to a JSON string is unwrapped once. Parse
// failures, arrays and scalars are absent.
func NormalizeJSONField(raw any) Blob {
	switch v := raw.(type) {
	case nil:
		return nil
	case Blob:
		return v
	case map[string]any:
		return Blob(v)
	case json.RawMessage:
		return parseBlob(string(v), true)
	case []byte:
		return parseBlob(string(v), true)
	case string:
		return parseBlob(v, true)
	default:
		return nil
	}
}

func parseBlob(s string, unwrap bool) Blob {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return nil
	}

	switch v := decoded.(type) {
	case map[string]any:
		return Blob(v)
	case string:
		if unwrap {
			return parseBlob(v, false)
		}
	}
	return nil
}
