// SPDX-License-Identifier: MIT
// Package hungarian: validation of options, cost matrices and assignments.
//
// Design principles:
//   - Side-effect free; no logging, no panics on user input.
//   - Shape errors are reported before value errors.
//   - O(n²) worst case; no allocations besides the permutation marker.

package hungarian

import (
	"fmt"
	"math"
)

// validateOptions checks the option knobs independently of any matrix.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Algo {
	case KonigCover, Potentials:
		// ok
	default:
		return ErrBadOptions
	}
	switch opts.Extraction {
	case ExtractCarried, ExtractGreedy:
		// ok
	default:
		return ErrBadOptions
	}
	// Eps ≥ 1 would make integer 1 look like a zero.
	if math.IsNaN(opts.Eps) || opts.Eps < 0 || opts.Eps >= 1 {
		return ErrBadOptions
	}
	if opts.MaxRounds < 0 {
		return ErrBadOptions
	}

	return nil
}

// validateCostMatrix verifies shape first (non-empty, square), then values
// (finite, non-negative), then magnitude. It returns n on success.
//
// Magnitude: every working value and every partial sum stays within
// (2n+1)·max|cost| (row and column potentials are bounded by n·max), so that
// bound must fit in T.
//
// Complexity: O(n²).
func validateCostMatrix[T Number](cost [][]T) (int, error) {
	// Stage 1: shape.
	n := len(cost)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(cost[i]) == 0 {
			return 0, ErrEmptyMatrix
		}
		if len(cost[i]) != n {
			return 0, ErrNonSquare
		}
	}

	// Stage 2: values.
	var v, maxCost float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = float64(cost[i][j])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, &CellError{Row: i, Col: j, Value: v, Err: ErrNonFinite}
			}
			if v < 0 {
				return 0, &CellError{Row: i, Col: j, Value: v, Err: ErrNegativeCost}
			}
			if v > maxCost {
				maxCost = v
			}
		}
	}

	// Stage 3: magnitude.
	if maxCost*float64(2*n+1) >= valueLimit[T]() {
		return 0, fmt.Errorf("%w: max cost %g with n=%d", ErrCostOverflow, maxCost, n)
	}

	return n, nil
}

// valueLimit returns the largest finite value of T as a float64.
//
// Complexity: O(1).
func valueLimit[T Number]() float64 {
	var (
		half  = 0.5
		fine  = 1 + 1e-10
		max32 = int64(math.MaxInt32)
	)
	switch {
	case T(half) == 0: // integer: the fraction truncates
		if x := T(max32); x+1 < x {
			return math.MaxInt32 // 32-bit int
		}
		return math.MaxInt64
	case T(fine) == 1: // float32 rounds the fraction away
		return math.MaxFloat32
	default:
		return math.MaxFloat64
	}
}

// ValidateAssignment checks that assignment is a permutation of {0..n-1}:
// length n, every entry in range, no duplicates, no Unassigned.
//
// Complexity: O(n) time, O(n) space.
func ValidateAssignment(assignment []int, n int) error {
	if n <= 0 || len(assignment) != n {
		return ErrInvalidAssignment
	}
	seen := make([]bool, n)

	var i, c int
	for i = 0; i < n; i++ {
		c = assignment[i]
		if c < 0 || c >= n || seen[c] {
			return ErrInvalidAssignment
		}
		seen[c] = true
	}

	return nil
}

// TotalCost validates cost and assignment and returns Σ cost[i][assignment[i]].
//
// Complexity: O(n²) (matrix validation dominates).
func TotalCost[T Number](cost [][]T, assignment []int) (T, error) {
	n, err := validateCostMatrix(cost)
	if err != nil {
		return 0, err
	}
	if err = ValidateAssignment(assignment, n); err != nil {
		return 0, err
	}

	return sumSelected(cost, assignment), nil
}

// sumSelected adds up the selected cells; inputs are assumed valid.
func sumSelected[T Number](cost [][]T, assignment []int) T {
	var total T
	for i, c := range assignment {
		total += cost[i][c]
	}

	return total
}
