// SPDX-License-Identifier: MIT
// Package hungarian: working matrix and the two reduction phases.
//
// The working matrix is a private row-major copy owned by one Solve call.
// Reductions subtract a per-row (per-column) constant; every bijection
// selects exactly one cell per row and column, so the optimum moves by the
// same constant for all of them and its identity is unchanged.

package hungarian

// workMatrix is an n×n row-major buffer with a zero tolerance.
type workMatrix[T Number] struct {
	n   int
	a   []T
	tol T
}

// newWorkMatrix copies cost into a fresh flat buffer. cost must be valid.
//
// Complexity: O(n²) time and space.
func newWorkMatrix[T Number](cost [][]T, eps float64) *workMatrix[T] {
	n := len(cost)
	w := &workMatrix[T]{
		n: n,
		a: make([]T, n*n),
		// Truncates to 0 for integer T.
		tol: T(eps),
	}
	for i := 0; i < n; i++ {
		copy(w.a[i*n:(i+1)*n], cost[i])
	}

	return w
}

func (w *workMatrix[T]) at(i, j int) T { return w.a[i*w.n+j] }

// isZero reports whether cell (i,j) is a zero under the tolerance.
func (w *workMatrix[T]) isZero(i, j int) bool { return w.a[i*w.n+j] <= w.tol }

// reduceRows subtracts each row's minimum from that row.
// Afterwards every row holds at least one exact zero.
//
// Complexity: O(n²).
func (w *workMatrix[T]) reduceRows() {
	var (
		i, j int
		row  []T
		m    T
	)
	for i = 0; i < w.n; i++ {
		row = w.a[i*w.n : (i+1)*w.n]
		m = row[0]
		for j = 1; j < w.n; j++ {
			if row[j] < m {
				m = row[j]
			}
		}
		if m == 0 {
			continue
		}
		for j = 0; j < w.n; j++ {
			row[j] -= m
		}
	}
}

// reduceCols subtracts each column's minimum from that column.
// Afterwards every row and every column holds at least one zero.
//
// Complexity: O(n²).
func (w *workMatrix[T]) reduceCols() {
	var (
		i, j, n = 0, 0, w.n
		m       T
	)
	for j = 0; j < n; j++ {
		m = w.a[j]
		for i = 1; i < n; i++ {
			if w.a[i*n+j] < m {
				m = w.a[i*n+j]
			}
		}
		if m == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			w.a[i*n+j] -= m
		}
	}
}
