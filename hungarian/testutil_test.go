// Package hungarian_test provides helpers shared across the *_test.go files:
// a brute-force oracle over all N! permutations, deterministic random
// matrices and row/column permutation utilities.
package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvassign/hungarian"
)

const (
	// seedDet is the fixed seed for every randomized test.
	seedDet = int64(42)

	// maxBrute is the largest N checked against the exhaustive oracle.
	maxBrute = 6

	// epsFloat is the tolerance for float cost comparisons.
	epsFloat = 1e-9
)

// bruteForceMin returns min over all permutations of Σ cost[i][perm[i]],
// together with how many permutations attain it.
func bruteForceMin[T hungarian.Number](cost [][]T) (best T, ties int) {
	n := len(cost)
	first := true
	for _, perm := range combin.Permutations(n, n) {
		var s T
		for i, j := range perm {
			s += cost[i][j]
		}
		switch {
		case first || s < best:
			best, ties, first = s, 1, false
		case s == best:
			ties++
		}
	}

	return best, ties
}

// bruteForceMaxZeros returns the maximum matching size over the true cells
// of mask (every matching extends to a permutation).
func bruteForceMaxZeros(mask [][]bool) int {
	n := len(mask)
	best := 0
	for _, perm := range combin.Permutations(n, n) {
		c := 0
		for i, j := range perm {
			if mask[i][j] {
				c++
			}
		}
		if c > best {
			best = c
		}
	}

	return best
}

// randomInts returns an n×n matrix with entries uniform in [0, hi].
func randomInts(rng *rand.Rand, n, hi int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			m[i][j] = rng.Intn(hi + 1)
		}
	}

	return m
}

// randomFloats returns an n×n matrix with entries uniform in [0, hi).
func randomFloats(rng *rand.Rand, n int, hi float64) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = rng.Float64() * hi
		}
	}

	return m
}

// randomMask returns an n×n boolean mask with density p of true cells.
func randomMask(rng *rand.Rand, n int, p float64) [][]bool {
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
		for j := range m[i] {
			m[i][j] = rng.Float64() < p
		}
	}

	return m
}

// cloneInts deep-copies m.
func cloneInts(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i := range m {
		out[i] = append([]int(nil), m[i]...)
	}

	return out
}

// permuteRows returns out with out[k] = m[perm[k]].
func permuteRows(m [][]int, perm []int) [][]int {
	out := make([][]int, len(m))
	for k, src := range perm {
		out[k] = append([]int(nil), m[src]...)
	}

	return out
}

// permuteCols returns out with out[i][k] = m[i][perm[k]].
func permuteCols(m [][]int, perm []int) [][]int {
	out := make([][]int, len(m))
	for i := range m {
		out[i] = make([]int, len(perm))
		for k, src := range perm {
			out[i][k] = m[i][src]
		}
	}

	return out
}

// requireOptimal checks bijection, cost consistency and brute-force optimality.
func requireOptimal(t *testing.T, cost [][]int, res hungarian.Result[int]) {
	t.Helper()
	n := len(cost)
	require.NoError(t, hungarian.ValidateAssignment(res.Assignment, n), "assignment must be a permutation")

	total, err := hungarian.TotalCost(cost, res.Assignment)
	require.NoError(t, err)
	require.Equal(t, total, res.TotalCost, "TotalCost must price the original matrix")

	if n <= maxBrute {
		want, _ := bruteForceMin(cost)
		require.Equal(t, want, res.TotalCost, "cost must match the exhaustive optimum for %v", cost)
	}
}

// optsFor returns default options with the given algorithm and extraction.
func optsFor(algo hungarian.Algorithm, ex hungarian.Extraction) hungarian.Options {
	opts := hungarian.DefaultOptions()
	opts.Algo = algo
	opts.Extraction = ex

	return opts
}
