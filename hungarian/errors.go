// SPDX-License-Identifier: MIT
// Package hungarian: sentinel error set.
//
// Two categories exist and every other sentinel wraps exactly one of them:
//   - ErrInvalidInput: the caller's matrix or options are unusable; fixable
//     by the caller.
//   - ErrInvariantViolation: an internal guarantee did not hold; not fixable
//     by changing the input.
//
// Callers match with errors.Is against either the category or the precise
// sentinel.

package hungarian

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the category of every caller-side failure.
	ErrInvalidInput = errors.New("hungarian: invalid input")

	// ErrInvariantViolation is the category of internal failures
	// (termination guarantee not met, matching not a bijection over zeros).
	ErrInvariantViolation = errors.New("hungarian: algorithm invariant violation")
)

var (
	// ErrEmptyMatrix signals N == 0 or a zero-length row.
	ErrEmptyMatrix = fmt.Errorf("%w: empty cost matrix", ErrInvalidInput)

	// ErrNonSquare signals ragged rows or a row length different from N.
	ErrNonSquare = fmt.Errorf("%w: cost matrix is not square", ErrInvalidInput)

	// ErrNegativeCost signals an entry below zero.
	ErrNegativeCost = fmt.Errorf("%w: negative cost", ErrInvalidInput)

	// ErrNonFinite signals a NaN or ±Inf entry.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf cost", ErrInvalidInput)

	// ErrCostOverflow signals entries so large that sums or intermediate
	// working values could leave the range of the element type.
	ErrCostOverflow = fmt.Errorf("%w: costs too large for the element type", ErrInvalidInput)

	// ErrBadOptions signals an unknown algorithm/extraction or an
	// out-of-range numeric knob.
	ErrBadOptions = fmt.Errorf("%w: invalid options", ErrInvalidInput)

	// ErrInvalidAssignment signals that an assignment is not a permutation
	// of {0..n-1} (see ValidateAssignment).
	ErrInvalidAssignment = fmt.Errorf("%w: assignment is not a permutation", ErrInvalidInput)
)

// CellError reports the position of an offending matrix entry.
// Unwrap yields the sentinel (ErrNegativeCost or ErrNonFinite).
type CellError struct {
	Row, Col int
	Value    float64
	Err      error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%v at [%d][%d] (value %g)", e.Err, e.Row, e.Col, e.Value)
}

func (e *CellError) Unwrap() error { return e.Err }

// invariantf wraps ErrInvariantViolation with the failing phase.
func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
