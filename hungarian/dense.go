// SPDX-License-Identifier: MIT
// Package hungarian: gonum adapters.

package hungarian

import "gonum.org/v1/gonum/mat"

// SolveDense solves the assignment problem for any gonum mat.Matrix.
// The matrix is read once into a [][]float64 and passed to Solve, so the
// float numeric policy (Options.Eps) applies.
//
// Errors: ErrEmptyMatrix for a nil or 0×0 matrix, ErrNonSquare for r ≠ c,
// otherwise those of Solve.
//
// Complexity: O(N²) copy + Solve.
func SolveDense(m mat.Matrix, opts Options) (Result[float64], error) {
	if m == nil {
		return Result[float64]{}, ErrEmptyMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return Result[float64]{}, ErrEmptyMatrix
	}
	if r != c {
		return Result[float64]{}, ErrNonSquare
	}

	cost := make([][]float64, r)
	for i := 0; i < r; i++ {
		cost[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			cost[i][j] = m.At(i, j)
		}
	}

	return Solve(cost, opts)
}

// PermutationDense returns the 0/1 matrix P with P[i][assignment[i]] = 1.
// For a cost matrix C, the sum of the element-wise product C∘P equals the
// assignment's total cost.
//
// Complexity: O(N²).
func PermutationDense(assignment []int) (*mat.Dense, error) {
	n := len(assignment)
	if err := ValidateAssignment(assignment, n); err != nil {
		return nil, err
	}
	p := mat.NewDense(n, n, nil)
	for i, j := range assignment {
		p.Set(i, j, 1)
	}

	return p, nil
}
