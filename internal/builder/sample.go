package builder

import "math/rand/v2"

// sample returns k distinct elements of items in random order.
// items is left untouched; k larger than len(items) is capped.
func sample(rng *rand.Rand, items []string, k int) []string {
	pool := make([]string, len(items))
	copy(pool, items)

	if k > len(pool) {
		k = len(pool)
	}
	// partial Fisher-Yates
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
