// SPDX-License-Identifier: MIT
// Package hungarian: matrix adjustment between covering rounds.

package hungarian

// adjust finds δ = min over cells covered by no line, subtracts δ from those
// cells and adds δ to cells covered by two lines. Singly covered cells are
// untouched, so every starred zero (always singly covered) survives, and at
// least one new zero appears on an uncovered line.
//
// Returns δ. Fails with ErrInvariantViolation when no uncovered cell exists
// or δ is not above the zero tolerance, as either would stall the loop.
//
// Complexity: O(n²).
func adjust[T Number](w *workMatrix[T], cs *coverState) (T, error) {
	var (
		n     = w.n
		i, j  int
		delta T
		found bool
		v     T
	)
	for i = 0; i < n; i++ {
		if cs.rowCovered(i) {
			continue
		}
		for j = 0; j < n; j++ {
			if cs.colCovered(j) {
				continue
			}
			v = w.at(i, j)
			if !found || v < delta {
				delta = v
				found = true
			}
		}
	}
	if !found {
		return 0, invariantf("adjust: no uncovered cell with fewer than n lines")
	}
	if delta <= w.tol {
		return 0, invariantf("adjust: uncovered zero left after marking")
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case !cs.rowCovered(i) && !cs.colCovered(j):
				w.a[i*n+j] -= delta
			case cs.rowCovered(i) && cs.colCovered(j):
				w.a[i*n+j] += delta
			}
		}
	}

	return delta, nil
}
