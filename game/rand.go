package game

import (
	"golang.org/x/exp/rand"
)

// Rand is the source of randomness used by board generation, smashing and
// move sampling. *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandInt returns a uniform integer in the closed range [lo, hi].
func RandInt(rng Rand, lo, hi int) int {
	if hi < lo {
		panic("RandInt: empty range")
	}
	return lo + rng.Intn(hi-lo+1)
}
