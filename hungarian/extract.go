// SPDX-License-Identifier: MIT
// Package hungarian: final extraction of a bijection from the zero-reduced
// matrix, and its verification.

package hungarian

// extractCarried returns a copy of the starred matching.
//
// Complexity: O(n).
func extractCarried(cs *coverState) []int {
	out := make([]int, cs.n)
	copy(out, cs.rowStar)

	return out
}

// extractGreedy derives a bijection from the zeros alone:
//  1. every unassigned row with exactly one free zero takes it;
//  2. if a pass assigned nothing, the first unassigned row takes its first
//     free zero;
//  3. repeat for at most 2n passes or until a pass makes no progress.
//
// The rule is a heuristic: it can leave rows Unassigned even though a
// perfect matching over zeros exists. The caller verifies the result.
//
// Complexity: O(n³) (2n passes of O(n²)).
func extractGreedy[T Number](w *workMatrix[T]) []int {
	var (
		n        = w.n
		out      = make([]int, n)
		colTaken = make([]bool, n)
		left     = n
		i, j     int
		pass     int
		zeros    int
		zeroCol  int
		progress bool
	)
	for i = 0; i < n; i++ {
		out[i] = Unassigned
	}

	for pass = 0; left > 0 && pass < 2*n; pass++ {
		progress = false

		// Rows with a unique free zero.
		for i = 0; i < n; i++ {
			if out[i] != Unassigned {
				continue
			}
			zeros, zeroCol = 0, Unassigned
			for j = 0; j < n; j++ {
				if !colTaken[j] && w.isZero(i, j) {
					zeros++
					zeroCol = j
				}
			}
			if zeros == 1 {
				out[i] = zeroCol
				colTaken[zeroCol] = true
				left--
				progress = true
			}
		}
		if progress {
			continue
		}

		// No unique zero anywhere: break the tie on the first open row.
		for i = 0; i < n && !progress; i++ {
			if out[i] != Unassigned {
				continue
			}
			for j = 0; j < n; j++ {
				if !colTaken[j] && w.isZero(i, j) {
					out[i] = j
					colTaken[j] = true
					left--
					progress = true
					break
				}
			}
		}
		if !progress {
			break
		}
	}

	return out
}

// verifyZeroMatching checks that assignment is a permutation and selects
// only zeros of the working matrix.
//
// Complexity: O(n).
func verifyZeroMatching[T Number](w *workMatrix[T], assignment []int) error {
	if err := ValidateAssignment(assignment, w.n); err != nil {
		return invariantf("extraction did not yield a bijection")
	}
	for i, j := range assignment {
		if !w.isZero(i, j) {
			return invariantf("extraction selected non-zero cell [%d][%d]", i, j)
		}
	}

	return nil
}
