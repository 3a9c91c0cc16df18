// Package record defines the generic result shape every connector returns
// and the normalizers that produce it from JSON bodies, CSV files and zip
// archives. A Record is one row or object; a Sequence preserves the order
// the upstream source reported.
package record

// Record is a single result row or object, keyed by field name. Values are
// whatever the source format produced: strings, numbers, booleans, nil, or
// nested maps and slices for JSON payloads that carry substructure.
type Record map[string]any

// Sequence is an ordered collection of Records in source order. It is never
// re-sorted after normalization.
type Sequence []Record

// Str returns the field as a string, or "" when absent or not a string.
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Num returns the field as a float64, or 0 when absent or not numeric.
// JSON numbers always decode to float64.
func (r Record) Num(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Int returns the field truncated to an int.
func (r Record) Int(key string) int {
	return int(r.Num(key))
}

// Rec returns a nested object field as a Record, or nil.
func (r Record) Rec(key string) Record {
	m, _ := r[key].(map[string]any)
	return Record(m)
}

// Seq returns a nested array-of-objects field as a Sequence. Non-object
// elements are skipped.
func (r Record) Seq(key string) Sequence {
	arr, _ := r[key].([]any)
	if arr == nil {
		return nil
	}
	out := make(Sequence, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// CollapseDefaults rewrites top-level fields of the form
// {"default": x, "fr": y} down to their default value. The NHL web API uses
// this structure for localized names.
func CollapseDefaults(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		if m, ok := v.(map[string]any); ok {
			if def, ok := m["default"]; ok {
				out[k] = def
				continue
			}
		}
		out[k] = v
	}
	return out
}
