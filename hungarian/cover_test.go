// Package hungarian_test exercises the reduction, covering and extraction
// kernels through the white-box bridges in export_privates_for_test.go.
package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/hungarian"
)

// TestReduce_KnownMatrix pins the reduced form of a rank-one matrix.
func TestReduce_KnownMatrix(t *testing.T) {
	got := hungarian.ExportedReduce([][]int{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	})
	want := [][]int{
		{0, 0, 0},
		{0, 1, 2},
		{0, 2, 4},
	}
	assert.Equal(t, want, got)
}

// TestReduce_ZeroInEveryLine checks that reduction leaves a zero in every
// row and every column and no negative entry.
func TestReduce_ZeroInEveryLine(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 10))
	for trial := 0; trial < 50; trial++ {
		n := 1 + trial%9
		red := hungarian.ExportedReduce(randomInts(rng, n, 99))

		rowZero := make([]bool, n)
		colZero := make([]bool, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.GreaterOrEqual(t, red[i][j], 0)
				if red[i][j] == 0 {
					rowZero[i] = true
					colZero[j] = true
				}
			}
		}
		for k := 0; k < n; k++ {
			assert.True(t, rowZero[k], "row %d has no zero", k)
			assert.True(t, colZero[k], "column %d has no zero", k)
		}
	}
}

// TestCover_KonigProperties verifies on random zero patterns that the
// carried matching is maximum, the cover has the same size, and every zero
// lies on a covering line.
func TestCover_KonigProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 11))
	for n := 1; n <= maxBrute; n++ {
		for trial := 0; trial < 60; trial++ {
			mask := randomMask(rng, n, 0.15+0.1*float64(trial%6))
			snap := hungarian.ExportedMaximizeZeros(mask)

			require.Equal(t, bruteForceMaxZeros(mask), snap.Matched, "mask %v", mask)
			require.Equal(t, snap.Matched, snap.Lines, "König equality on %v", mask)

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if mask[i][j] {
						require.True(t, snap.RowCovered[i] || snap.ColCovered[j],
							"zero [%d][%d] uncovered in %v", i, j, mask)
					}
				}
			}

			used := make(map[int]bool, n)
			for i, j := range snap.RowStar {
				if j == hungarian.Unassigned {
					continue
				}
				require.True(t, mask[i][j], "star on a non-zero cell")
				require.False(t, used[j], "column %d starred twice", j)
				used[j] = true
			}
		}
	}
}

// TestCover_AugmentsPastGreedy builds a pattern where the greedy start
// leaves a row exposed and only an augmenting path completes the matching.
func TestCover_AugmentsPastGreedy(t *testing.T) {
	mask := [][]bool{
		{true, true, false},
		{true, false, true},
		{true, false, true},
	}
	snap := hungarian.ExportedMaximizeZeros(mask)
	assert.Equal(t, 3, snap.Matched)
	assert.Equal(t, []int{1, 2, 0}, snap.RowStar)
}

// TestExtractGreedy_DeadEnd shows the heuristic failing where a perfect
// matching over zeros exists.
func TestExtractGreedy_DeadEnd(t *testing.T) {
	mask := [][]bool{
		{true, true, false},
		{true, false, true},
		{true, false, true},
	}
	got := hungarian.ExportedExtractGreedyZeros(mask)
	assert.Equal(t, []int{0, 2, hungarian.Unassigned}, got)
	assert.Error(t, hungarian.ValidateAssignment(got, 3))
}

// TestExtractGreedy_UniqueZeroChain follows forced choices to a full bijection.
func TestExtractGreedy_UniqueZeroChain(t *testing.T) {
	mask := [][]bool{
		{true, true, true},
		{false, true, true},
		{false, false, true},
	}
	got := hungarian.ExportedExtractGreedyZeros(mask)
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.NoError(t, hungarian.ValidateAssignment(got, 3))
}
