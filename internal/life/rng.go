package life

import "math/rand/v2"

// NewRNG returns a deterministic PCG-backed generator for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// RandInt returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func RandInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func clampDensity(d float64) float64 {
	switch {
	case d != d: // NaN
		return 0
	case d < 0:
		return 0
	case d > 1:
		return 1
	}
	return d
}
