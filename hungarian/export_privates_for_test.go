// SPDX-License-Identifier: MIT

package hungarian

// Test bridge (white-box) for the covering and extraction kernels.
//
// The kernels operate on a working matrix; the bridges build one from a
// zero mask (true ⇒ 0, false ⇒ 1) so that tests can drive a specific zero
// pattern without going through the reductions.

// zeroMaskMatrix builds an integer working matrix from mask.
func zeroMaskMatrix(mask [][]bool) *workMatrix[int] {
	n := len(mask)
	w := &workMatrix[int]{n: n, a: make([]int, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !mask[i][j] {
				w.a[i*n+j] = 1
			}
		}
	}

	return w
}

// CoverSnapshot is a read-only view of a finished maximize call.
type CoverSnapshot struct {
	Matched    int
	Lines      int
	RowStar    []int
	RowCovered []bool
	ColCovered []bool
}

// ExportedMaximizeZeros runs the greedy start plus augmenting marking on mask.
func ExportedMaximizeZeros(mask [][]bool) CoverSnapshot {
	w := zeroMaskMatrix(mask)
	cs := newCoverState(w.n)
	starGreedy(w, cs)
	s := CoverSnapshot{
		Matched:    maximize(w, cs),
		Lines:      cs.lines(),
		RowStar:    append([]int(nil), cs.rowStar...),
		RowCovered: make([]bool, w.n),
		ColCovered: make([]bool, w.n),
	}
	for k := 0; k < w.n; k++ {
		s.RowCovered[k] = cs.rowCovered(k)
		s.ColCovered[k] = cs.colCovered(k)
	}

	return s
}

// ExportedExtractGreedyZeros runs the greedy extraction on mask.
func ExportedExtractGreedyZeros(mask [][]bool) []int {
	return extractGreedy(zeroMaskMatrix(mask))
}

// ExportedReduce returns the row- and column-reduced copy of cost.
func ExportedReduce(cost [][]int) [][]int {
	w := newWorkMatrix(cost, 0)
	w.reduceRows()
	w.reduceCols()
	out := make([][]int, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = append([]int(nil), w.a[i*w.n:(i+1)*w.n]...)
	}

	return out
}
