// The sliceutils package collects small helpers for slices and map keys.
package sliceutils

import "sort"

// SortedKeys() returns the keys of the map in sorted order, which is the
// canonical page order used across the project.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}
