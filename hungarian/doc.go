// SPDX-License-Identifier: MIT

// Package hungarian solves the square assignment problem: given an N×N
// matrix of non-negative costs, pick one column per row (a perfect
// matching) so that the sum of the selected costs is minimal.
//
// What is provided:
//
//   - Solve: generic entry point over integer and float cost matrices.
//   - SolveDense: the same for a gonum mat.Matrix.
//   - ValidateAssignment, TotalCost: helpers to check and price a matching.
//
// Two algorithms are available (Options.Algo):
//
//   - KonigCover (default): the textbook Kuhn–Munkres minimization form:
//     row reduction, column reduction, then rounds of
//     "maximum zero matching → König line cover → δ adjustment" until N
//     lines are needed. The starred matching is carried through every
//     round and grown with augmenting paths, so the final matching is
//     complete by construction.
//
//   - Complexity: O(N³) time worst case, O(N²) memory.
//
//   - Potentials: shortest augmenting paths with row/column potentials
//     (Jonker–Volgenant form). Same optimum, different route; handy as an
//     independent check.
//
//   - Complexity: O(N³) time, O(N²) memory.
//
// Numeric policy:
//
//	Arithmetic happens in the element type of the matrix. For integer
//	types zero tests are exact. For float types an entry w of the reduced
//	matrix counts as zero iff w ≤ Options.Eps (DefaultEps = 1e-9); the same
//	tolerance is used by every phase. Costs so large that (2N+1)·max could
//	leave the range of the element type are rejected up front
//	(ErrCostOverflow), so sums never wrap.
//
// Errors:
//
//	Malformed input (empty, ragged, negative, NaN/Inf, too large, bad options) wraps
//	ErrInvalidInput. A broken internal guarantee wraps ErrInvariantViolation;
//	it signals a defect or float drift, never a problem with the caller's
//	data. On error the returned Result is always the zero value.
//
// Usage:
//
//	res, err := hungarian.Solve([][]int{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	}, hungarian.DefaultOptions())
//	if err != nil {
//		// errors.Is(err, hungarian.ErrInvalidInput) ...
//	}
//	fmt.Println(res.TotalCost, res.Assignment) // 5 [1 0 2]
//
// Solve is a pure function: it copies the input into a private working
// matrix and keeps no state between calls, so independent calls may run
// concurrently without synchronization.
package hungarian
