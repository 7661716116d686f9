// SPDX-License-Identifier: MIT
// Package hungarian: public types, options and defaults.

package hungarian

// Number is the set of element types a cost matrix may hold.
// Unsigned types are excluded: the potentials solver needs signed values.
// Narrow integers are excluded: a handful of small costs already overflows
// them. Solve still rejects magnitudes that could overflow T (ErrCostOverflow).
type Number interface {
	~int | ~int64 | ~float32 | ~float64
}

// Unassigned marks a row without a column during extraction.
// It never appears in a successful Result.
const Unassigned = -1

// Algorithm selects the solving strategy.
type Algorithm int

const (
	// KonigCover runs reduction, König line covering and δ adjustment.
	KonigCover Algorithm = iota

	// Potentials runs shortest augmenting paths with dual potentials.
	Potentials
)

// String returns the stable lowercase name used by configs and the HTTP API.
func (a Algorithm) String() string {
	switch a {
	case KonigCover:
		return "konig"
	case Potentials:
		return "potentials"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name produced by Algorithm.String back to its value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "konig":
		return KonigCover, nil
	case "potentials":
		return Potentials, nil
	default:
		return 0, ErrBadOptions
	}
}

// Extraction selects how KonigCover turns the zero-reduced matrix into a
// concrete bijection. Ignored by Potentials.
type Extraction int

const (
	// ExtractCarried returns the starred matching maintained by the
	// covering loop. Complete by construction.
	ExtractCarried Extraction = iota

	// ExtractGreedy re-derives the matching from the zeros with the
	// "unique zero first, else first free zero" rule, capped at 2N passes.
	// It may fail on some zero patterns; failure is reported as
	// ErrInvariantViolation.
	ExtractGreedy
)

// String returns the stable lowercase name used by configs and the HTTP API.
func (e Extraction) String() string {
	switch e {
	case ExtractCarried:
		return "carried"
	case ExtractGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseExtraction maps a name produced by Extraction.String back to its value.
func ParseExtraction(s string) (Extraction, error) {
	switch s {
	case "", "carried":
		return ExtractCarried, nil
	case "greedy":
		return ExtractGreedy, nil
	default:
		return 0, ErrBadOptions
	}
}

// DefaultEps is the zero tolerance applied to float matrices.
const DefaultEps = 1e-9

// RoundInfo describes one finished covering round of KonigCover.
type RoundInfo struct {
	// Round is the 0-based round index.
	Round int
	// Matched is the size of the starred matching after augmentation.
	Matched int
	// Lines is the size of the minimum line cover (equals Matched).
	Lines int
	// Delta is the adjustment applied after this round; 0 on the final round.
	Delta float64
}

// Options configures Solve.
//
// Fields:
//   - Algo: KonigCover (default) or Potentials.
//   - Extraction: ExtractCarried (default) or ExtractGreedy.
//   - Eps: zero tolerance in [0, 1); converted to the element type,
//     so integer matrices always compare exactly.
//   - MaxRounds: cap on covering rounds; 0 means (N+1)².
//   - OnRound: optional hook called after every covering round.
//     Must not retain or mutate solver state; it only receives copies.
type Options struct {
	Algo       Algorithm
	Extraction Extraction
	Eps        float64
	MaxRounds  int
	OnRound    func(RoundInfo)
}

// DefaultOptions returns KonigCover with carried extraction, DefaultEps,
// an automatic round cap and no hook.
func DefaultOptions() Options {
	return Options{
		Algo:       KonigCover,
		Extraction: ExtractCarried,
		Eps:        DefaultEps,
		MaxRounds:  0,
		OnRound:    nil,
	}
}

// Result is the outcome of a successful Solve.
type Result[T Number] struct {
	// Assignment[i] is the column chosen for row i; a permutation of {0..N-1}.
	Assignment []int

	// TotalCost is Σ cost[i][Assignment[i]] over the original matrix.
	TotalCost T

	// Adjustments counts δ-adjustment steps (always 0 for Potentials).
	Adjustments int
}
