// Package compare holds the serialize-and-compare primitives shared by the
// comparison passes. Equality here is exact-representation equality: the
// string "1" and the number 1 serialize differently and are therefore
// different, which is what a configuration drift report wants to surface.
package compare

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Missing is the sentinel serialized form for an absent property value.
// Absent and explicit null compare equal.
const Missing = "null"

// Serialize renders one property value to its canonical serialized form.
// Unmarshalable values fall back to their fmt rendering quoted as a JSON
// string so a comparison never fails outright.
func Serialize(v any, exists bool) string {
	if !exists || v == nil {
		return Missing
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
	}
	return string(b)
}

// AllEqual reports whether every serialized form in the slice is identical.
// Fewer than two values are trivially equal.
func AllEqual(serialized []string) bool {
	for i := 1; i < len(serialized); i++ {
		if serialized[i] != serialized[0] {
			return false
		}
	}
	return true
}

// UnionKeys returns the sorted union of keys across the given property
// bags, minus the ignored set.
func UnionKeys(bags []map[string]any, ignored []string) []string {
	skip := make(map[string]struct{}, len(ignored))
	for _, k := range ignored {
		skip[k] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, bag := range bags {
		for k := range bag {
			if _, ok := skip[k]; ok {
				continue
			}
			seen[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
