// SPDX-License-Identifier: MIT
// Package hungarian: unified entry point.
//
// Solve validates options and matrix, routes to the selected algorithm,
// verifies the returned bijection and prices it on the original matrix.
//
// Design principles:
//   - Pure: the caller's matrix is only read; all mutation happens on a
//     private working copy.
//   - Deterministic: fixed scan orders everywhere, so repeated calls on the
//     same input return the identical assignment.
//   - No partial results: on error the zero Result is returned.

package hungarian

// Solve returns a minimum-cost perfect matching of rows to columns.
//
// Contracts:
//   - cost is square (N×N), N ≥ 1, entries finite and ≥ 0.
//   - cost is never mutated.
//
// Errors: ErrInvalidInput family (ErrEmptyMatrix, ErrNonSquare,
// ErrNegativeCost, ErrNonFinite via *CellError, ErrBadOptions) and
// ErrInvariantViolation.
//
// Complexity: O(N³) time, O(N²) memory for either algorithm.
func Solve[T Number](cost [][]T, opts Options) (Result[T], error) {
	// Stage 1: validation.
	if err := validateOptions(opts); err != nil {
		return Result[T]{}, err
	}
	n, err := validateCostMatrix(cost)
	if err != nil {
		return Result[T]{}, err
	}

	// Stage 2: route by algorithm.
	var (
		assignment  []int
		adjustments int
	)
	switch opts.Algo {
	case Potentials:
		assignment, err = solvePotentials(cost)
		if err == nil && ValidateAssignment(assignment, n) != nil {
			err = invariantf("potentials: result is not a bijection")
		}
	default:
		assignment, adjustments, err = solveKonig(cost, opts)
	}
	if err != nil {
		return Result[T]{}, err
	}

	// Stage 3: price on the original matrix.
	return Result[T]{
		Assignment:  assignment,
		TotalCost:   sumSelected(cost, assignment),
		Adjustments: adjustments,
	}, nil
}

// solveKonig runs reduction, the covering loop and extraction on a private
// working copy. It returns the assignment and the number of adjustments.
//
// Complexity: O(n³) worst case: at most n augmentations, and between two
// augmentations at most n adjustments (each one marks a new column).
func solveKonig[T Number](cost [][]T, opts Options) ([]int, int, error) {
	var (
		n  = len(cost)
		w  = newWorkMatrix(cost, opts.Eps)
		cs = newCoverState(n)
	)

	// Phases 1–2.
	w.reduceRows()
	w.reduceCols()

	// Phase 3.
	maxRounds := opts.MaxRounds
	if maxRounds == 0 {
		maxRounds = (n + 1) * (n + 1)
	}
	starGreedy(w, cs)

	var (
		round   int
		matched int
		lines   int
		delta   T
		err     error
	)
	for round = 0; ; round++ {
		matched = maximize(w, cs)
		lines = cs.lines()
		if lines != matched {
			return nil, 0, invariantf("cover: %d lines for a matching of %d", lines, matched)
		}
		if lines == n {
			notify(opts, RoundInfo{Round: round, Matched: matched, Lines: lines})
			break
		}
		if round+1 >= maxRounds {
			return nil, 0, invariantf("cover: no complete matching after %d rounds", maxRounds)
		}
		if delta, err = adjust(w, cs); err != nil {
			return nil, 0, err
		}
		notify(opts, RoundInfo{Round: round, Matched: matched, Lines: lines, Delta: float64(delta)})
	}

	// Phase 4.
	var assignment []int
	switch opts.Extraction {
	case ExtractGreedy:
		assignment = extractGreedy(w)
	default:
		assignment = extractCarried(cs)
	}
	if err = verifyZeroMatching(w, assignment); err != nil {
		return nil, 0, err
	}

	return assignment, round, nil
}

// notify calls the OnRound hook if one is set.
func notify(opts Options, info RoundInfo) {
	if opts.OnRound != nil {
		opts.OnRound(info)
	}
}
