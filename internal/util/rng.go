package util

import "math/rand"

// New returns a deterministic generator. Seed 0 is mapped to 1 so that an
// unset seed still replays the same way.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// RunSeed derives the seed for one run of a batch, so that workers can pick
// runs up in any order and still reproduce them.
func RunSeed(base int64, run int) int64 {
	return base + int64(run)*7919
}

// Order returns a shuffled 0..n-1 when shuffle is set, and the identity
// order otherwise.
func Order(rng *rand.Rand, n int, shuffle bool) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	if shuffle && rng != nil {
		rng.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}
