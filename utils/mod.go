package utils

import "cmp"

// FindIndex returns the index of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the first largest element, or -1 for an empty slice.
func ArgMax[T cmp.Ordered](slice []T) int {
	best := -1
	for i, v := range slice {
		if best < 0 || v > slice[best] {
			best = i
		}
	}
	return best
}
