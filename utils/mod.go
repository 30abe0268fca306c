package utils

import "golang.org/x/exp/rand"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Draw returns n distinct elements of pool in random order, leaving pool untouched.
func Draw[T any](rng *rand.Rand, pool []T, n int) []T {
	if n > len(pool) {
		panic("cannot draw more elements than the pool holds")
	}
	shuffled := make([]T, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
