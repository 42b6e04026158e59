package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// SetCommodityField returns a copy of form whose commodity at index has the
// dot-separated path set to value, e.g. "grossWeight.weight". Sibling fields
// of every object along the path keep their values. form is never modified.
func SetCommodityField(form XpoFormState, index int, path string, value any) (XpoFormState, error) {
	if path = strings.Trim(strings.TrimSpace(path), "."); path == "" {
		return form, fmt.Errorf("commodity field path is required")
	}

	patch := map[string]any{}
	cursor := patch
	segments := strings.Split(path, ".")
	for _, seg := range segments[:len(segments)-1] {
		next := map[string]any{}
		cursor[seg] = next
		cursor = next
	}
	cursor[segments[len(segments)-1]] = value

	return UpdateCommodity(form, index, patch)
}

// UpdateCommodity returns a copy of form whose commodity at index has patch
// deep-merged into it.
func UpdateCommodity(form XpoFormState, index int, patch map[string]any) (XpoFormState, error) {
	if index < 0 || index >= len(form.Commodities) {
		return form, fmt.Errorf("commodity index %d out of range [0,%d)", index, len(form.Commodities))
	}

	merged, err := MergeCommodity(form.Commodities[index], patch)
	if err != nil {
		return form, fmt.Errorf("commodity %d: %w", index, err)
	}

	out := form
	out.Commodities = append([]XpoCommodity(nil), form.Commodities...)
	out.Commodities[index] = merged
	return out, nil
}

// MergeCommodity deep-merges a partial commodity object into c. Nested
// objects in patch are merged key by key; any other value replaces what was
// there. Loosely typed scalars such as "12.5" for a weight are accepted.
func MergeCommodity(c XpoCommodity, patch map[string]any) (XpoCommodity, error) {
	base, err := toObject(c)
	if err != nil {
		return c, err
	}

	merged := deepMerge(base, patch)

	var out XpoCommodity
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &out,
	})
	if err != nil {
		return c, err
	}
	if err := decoder.Decode(merged); err != nil {
		return c, fmt.Errorf("invalid commodity update: %w", err)
	}
	return out, nil
}

func toObject(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	obj := map[string]any{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// deepMerge returns a new object holding dst overlaid with src. Neither input is modified.
func deepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcObj, srcIsObj := v.(map[string]any)
		dstObj, dstIsObj := out[k].(map[string]any)
		if srcIsObj && dstIsObj {
			out[k] = deepMerge(dstObj, srcObj)
			continue
		}
		out[k] = v
	}
	return out
}
