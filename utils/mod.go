package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Sum adds up the values of a slice picked by index.
func Sum[T constraints.Integer | constraints.Float](values []T, indices []int) T {
	var total T
	for _, i := range indices {
		total += values[i]
	}
	return total
}
