// SPDX-License-Identifier: MIT
// Package hungarian: starred matching, reachability marking and line cover.
//
// Steps per round:
//  1. Mark every exposed row (no starred zero).
//  2. Breadth-first: a marked row marks each unmarked column holding a zero
//     in that row; a marked column marks the row of its starred zero.
//  3. If a marked column has no starred zero, the BFS predecessors form an
//     augmenting path: flip it, grow the matching by one and restart.
//  4. Otherwise the marks are at a fixed point and the minimum line cover
//     is {unmarked rows} ∪ {marked columns}; its size equals the matching
//     size (König).

package hungarian

// coverState holds the starred matching (kept across rounds) and the marks
// (rebuilt every round).
type coverState struct {
	n         int
	rowStar   []int // rowStar[i] = column of the starred zero in row i, or Unassigned
	colStar   []int // colStar[j] = row of the starred zero in column j, or Unassigned
	rowMarked []bool
	colMarked []bool
	parent    []int // parent[j] = marked row through which column j was reached
	queue     []int // BFS scratch
}

// newCoverState allocates an empty matching for an n×n problem.
//
// Complexity: O(n).
func newCoverState(n int) *coverState {
	cs := &coverState{
		n:         n,
		rowStar:   make([]int, n),
		colStar:   make([]int, n),
		rowMarked: make([]bool, n),
		colMarked: make([]bool, n),
		parent:    make([]int, n),
		queue:     make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		cs.rowStar[i] = Unassigned
		cs.colStar[i] = Unassigned
	}

	return cs
}

// starGreedy scans rows top to bottom and stars the first zero of each row
// whose column is still free. The result is a maximal, not necessarily
// maximum, matching.
//
// Complexity: O(n²).
func starGreedy[T Number](w *workMatrix[T], cs *coverState) {
	var i, j int
	for i = 0; i < cs.n; i++ {
		if cs.rowStar[i] != Unassigned {
			continue
		}
		for j = 0; j < cs.n; j++ {
			if cs.colStar[j] == Unassigned && w.isZero(i, j) {
				cs.rowStar[i] = j
				cs.colStar[j] = i
				break
			}
		}
	}
}

// markReachable rebuilds the marks from the exposed rows. It stops early and
// returns the end column of an augmenting path when one is found; otherwise
// it runs to the fixed point and returns Unassigned.
//
// Complexity: O(n²).
func markReachable[T Number](w *workMatrix[T], cs *coverState) int {
	var i, j, r int
	cs.queue = cs.queue[:0]
	for i = 0; i < cs.n; i++ {
		cs.colMarked[i] = false
		cs.parent[i] = Unassigned
		cs.rowMarked[i] = cs.rowStar[i] == Unassigned
		if cs.rowMarked[i] {
			cs.queue = append(cs.queue, i)
		}
	}

	for head := 0; head < len(cs.queue); head++ {
		i = cs.queue[head]
		for j = 0; j < cs.n; j++ {
			if cs.colMarked[j] || !w.isZero(i, j) {
				continue
			}
			cs.colMarked[j] = true
			cs.parent[j] = i
			r = cs.colStar[j]
			if r == Unassigned {
				return j
			}
			if !cs.rowMarked[r] {
				cs.rowMarked[r] = true
				cs.queue = append(cs.queue, r)
			}
		}
	}

	return Unassigned
}

// augment flips the alternating path ending at column j: every column on it
// is re-starred to the row that reached it, and the path's first row (an
// exposed one) becomes matched.
//
// Complexity: O(n).
func augment(cs *coverState, j int) {
	var i, prev int
	for j != Unassigned {
		i = cs.parent[j]
		prev = cs.rowStar[i]
		cs.rowStar[i] = j
		cs.colStar[j] = i
		j = prev
	}
}

// maximize grows the starred matching until no augmenting path over zeros
// remains, leaving the marks at their fixed point. Returns the matching size.
//
// Complexity: O(n³) worst case (≤ n augmentations of O(n²) each).
func maximize[T Number](w *workMatrix[T], cs *coverState) int {
	for {
		j := markReachable(w, cs)
		if j == Unassigned {
			break
		}
		augment(cs, j)
	}

	return cs.matched()
}

// matched counts starred zeros.
func (cs *coverState) matched() int {
	var c int
	for i := 0; i < cs.n; i++ {
		if cs.rowStar[i] != Unassigned {
			c++
		}
	}

	return c
}

// rowCovered reports whether row i is a covering line (unmarked row).
func (cs *coverState) rowCovered(i int) bool { return !cs.rowMarked[i] }

// colCovered reports whether column j is a covering line (marked column).
func (cs *coverState) colCovered(j int) bool { return cs.colMarked[j] }

// lines returns the size of the current line cover.
//
// Complexity: O(n).
func (cs *coverState) lines() int {
	var c int
	for k := 0; k < cs.n; k++ {
		if cs.rowCovered(k) {
			c++
		}
		if cs.colCovered(k) {
			c++
		}
	}

	return c
}
