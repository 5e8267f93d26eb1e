// Package names provides the locale-aware name ordering used for every
// aligned-name list in comparison output.
package names

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortCaseInsensitive orders display names case-insensitively using
// locale-aware collation, with a byte-wise tie break so equal-folding names
// still order deterministically. A fresh collator per call keeps callers
// safe to run concurrently (collate.Collator is not goroutine-safe).
func SortCaseInsensitive(ss []string) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(ss, func(i, j int) bool {
		if r := c.CompareString(ss[i], ss[j]); r != 0 {
			return r < 0
		}
		return ss[i] < ss[j]
	})
}

// SortedKeys returns the case-insensitively sorted keys of a map keyed by
// display name.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortCaseInsensitive(keys)
	return keys
}

// SortBy orders items by a display-name key under the same collation rule
// as SortCaseInsensitive.
func SortBy[T any](items []T, key func(T) string) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		ki, kj := key(items[i]), key(items[j])
		if r := c.CompareString(ki, kj); r != 0 {
			return r < 0
		}
		return ki < kj
	})
}
