// Package lvassign solves the square assignment problem: given an N×N matrix
// of non-negative costs, pick one cell per row and per column so that the
// sum of the picked cells is as small as possible.
//
// What is inside:
//
//	hungarian/        the solver: reduction, König line covering, δ adjustment
//	                  and a shortest-augmenting-path (potentials) variant
//	matrixio/         JSON / CSV / TOML cost-matrix codecs and a seeded generator
//	internal/api/     HTTP endpoint (POST /v1/solve)
//	internal/cli/     the lvassign command (solve, random, serve)
//	cmd/lvassign/     binary entry point
//
// Quick example:
//
//	cost := [][]int{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	}
//	res, _ := hungarian.Solve(cost, hungarian.DefaultOptions())
//	// res.TotalCost == 5, res.Assignment == [1 0 2]
//
// Command line:
//
//	lvassign random 6 --seed 7 | lvassign solve -
//
//	go install github.com/katalvlaran/lvassign/cmd/lvassign@latest
package lvassign
