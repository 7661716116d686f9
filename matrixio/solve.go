package matrixio

import "github.com/katalvlaran/lvassign/hungarian"

// Solution is a solver result with the total widened to float64.
type Solution struct {
	TotalCost   float64
	Assignment  []int
	Adjustments int
}

// Solve runs hungarian.Solve on int64 when every cell is a whole number
// (see Integral), so integer inputs get exact arithmetic, and on float64
// otherwise.
func Solve(m Matrix, opts hungarian.Options) (Solution, error) {
	if ints, ok := m.Integral(); ok {
		res, err := hungarian.Solve(ints, opts)
		if err != nil {
			return Solution{}, err
		}
		return Solution{
			TotalCost:   float64(res.TotalCost),
			Assignment:  res.Assignment,
			Adjustments: res.Adjustments,
		}, nil
	}

	res, err := hungarian.Solve(m.Cost, opts)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		TotalCost:   res.TotalCost,
		Assignment:  res.Assignment,
		Adjustments: res.Adjustments,
	}, nil
}
