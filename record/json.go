package record

import (
	"encoding/json"
	"slices"
	"sort"
	"strings"
)

// Shape describes how a call's JSON payload maps onto Records.
type Shape int

const (
	// SingleObject emits exactly one Record from a top-level object.
	SingleObject Shape = iota
	// ArrayOfObjects emits one Record per element of a top-level array,
	// preserving array order.
	ArrayOfObjects
	// GroupedArrays emits one Record per element of every array value of a
	// top-level object. The NHL roster and prospects endpoints group players
	// by position this way, forwards first; groups are visited in that
	// order, with any other keys following in sorted order.
	GroupedArrays
)

// groupOrder is the order the grouped NHL payloads list their position
// groups in.
var groupOrder = []string{"forwards", "defensemen", "goalies"}

// FromJSON parses body and normalizes it into a Sequence according to shape.
// When path is non-empty the declared key sequence is navigated first; a
// missing segment is a *ShapeError. SingleObject payloads come back as a
// Sequence of length one.
func FromJSON(body []byte, shape Shape, path ...string) (Sequence, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedError{Err: err}
	}

	for i, seg := range path {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &ShapeError{Path: strings.Join(path[:i+1], ".")}
		}
		raw, ok = obj[seg]
		if !ok {
			return nil, &ShapeError{Path: strings.Join(path[:i+1], ".")}
		}
	}

	switch shape {
	case SingleObject:
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &ShapeError{Path: strings.Join(path, ".")}
		}
		return Sequence{Record(obj)}, nil

	case ArrayOfObjects:
		arr, ok := raw.([]any)
		if !ok {
			return nil, &ShapeError{Path: strings.Join(path, ".")}
		}
		out := make(Sequence, 0, len(arr))
		for _, el := range arr {
			if m, ok := el.(map[string]any); ok {
				out = append(out, Record(m))
			}
		}
		return out, nil

	case GroupedArrays:
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &ShapeError{Path: strings.Join(path, ".")}
		}
		keys := make([]string, 0, len(obj))
		for _, k := range groupOrder {
			if _, ok := obj[k]; ok {
				keys = append(keys, k)
			}
		}
		rest := make([]string, 0, len(obj))
		for k := range obj {
			if !slices.Contains(groupOrder, k) {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		keys = append(keys, rest...)

		var out Sequence
		for _, k := range keys {
			arr, ok := obj[k].([]any)
			if !ok {
				continue
			}
			for _, el := range arr {
				if m, ok := el.(map[string]any); ok {
					out = append(out, Record(m))
				}
			}
		}
		return out, nil
	}

	return nil, &ShapeError{Path: strings.Join(path, ".")}
}
