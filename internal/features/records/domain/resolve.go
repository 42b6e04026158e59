package domain

import (
	"sort"
	"strings"
)

// keyVariants lists the spellings probed for a canonical key, in order:
// as given, '#'-stripped, '#'-prefixed, then the lower-cased form of each.
func keyVariants(canonicalKey string) []string {
	stripped := strings.ReplaceAll(canonicalKey, "#", "")
	hashed := "#" + stripped

	return []string{
		canonicalKey,
		stripped,
		hashed,
		strings.ToLower(canonicalKey),
		strings.ToLower(stripped),
		strings.ToLower(hashed),
	}
}

// ResolveExact probes only the fixed key variants of canonicalKey.
// Null and empty values are skipped so later variants still get a chance.
func ResolveExact(blob Blob, canonicalKey string) (string, bool) {
	if blob == nil || canonicalKey == "" {
		return "", false
	}
	for _, variant := range keyVariants(canonicalKey) {
		v, ok := blob[variant]
		if !ok {
			continue
		}
		if s, ok := scalarString(v); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// ResolveValue finds the value stored under any plausible spelling of canonicalKey.
//
// The fixed variants of ResolveExact win. Otherwise every key of the blob is
// scanned in sorted order and matched case-insensitively by equality, equality
// after '#'-stripping, or containment of the stripped canonical key.
func ResolveValue(blob Blob, canonicalKey string) (string, bool) {
	if v, ok := ResolveExact(blob, canonicalKey); ok {
		return v, true
	}
	if blob == nil {
		return "", false
	}

	needle := strings.ToLower(strings.ReplaceAll(canonicalKey, "#", ""))
	if needle == "" {
		return "", false
	}

	keys := make([]string, 0, len(blob))
	for k := range blob {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		lower := strings.ToLower(k)
		stripped := strings.ReplaceAll(lower, "#", "")
		if lower != needle && stripped != needle && !strings.Contains(stripped, needle) {
			continue
		}
		if s, ok := scalarString(blob[k]); ok && s != "" {
			return s, true
		}
	}

	return "", false
}
