package matrixio

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random returns an n×n matrix with cells drawn uniformly from [lo, hi].
//
// Errors: ErrBadRange if n < 1, lo < 0 or hi < lo.
//
// Complexity: O(n²).
func Random(n int, lo, hi, seed int64) ([][]int64, error) {
	switch {
	case n < 1:
		return nil, fmt.Errorf("%w: n=%d", ErrBadRange, n)
	case lo < 0:
		return nil, fmt.Errorf("%w: min=%d is negative", ErrBadRange, lo)
	case hi < lo:
		return nil, fmt.Errorf("%w: max=%d < min=%d", ErrBadRange, hi, lo)
	}

	rng := rngFromSeed(seed)
	draw := func() int64 { return lo + rng.Int63n(hi-lo+1) }
	if hi-lo == math.MaxInt64 {
		// [0, MaxInt64]: the span does not fit in int64, Int63 covers it.
		draw = rng.Int63
	}

	out := make([][]int64, n)
	for i := range out {
		out[i] = make([]int64, n)
		for j := range out[i] {
			out[i][j] = draw()
		}
	}

	return out, nil
}
