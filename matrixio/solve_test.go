package matrixio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/hungarian"
	"github.com/katalvlaran/lvassign/matrixio"
)

func TestSolve_IntegralMatchesSolver(t *testing.T) {
	want, err := hungarian.Solve(scenarioA, hungarian.DefaultOptions())
	require.NoError(t, err)

	got, err := matrixio.Solve(matrixio.FromInts(scenarioA), hungarian.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, float64(want.TotalCost), got.TotalCost)
	assert.Equal(t, want.Assignment, got.Assignment)
	assert.Equal(t, want.Adjustments, got.Adjustments)
}

func TestSolve_FractionalUsesFloats(t *testing.T) {
	cost := [][]float64{{1.5, 2.25}, {0.5, 3}}
	want, err := hungarian.Solve(cost, hungarian.DefaultOptions())
	require.NoError(t, err)

	got, err := matrixio.Solve(matrixio.Matrix{Cost: cost}, hungarian.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, want.TotalCost, got.TotalCost, 1e-12)
	assert.Equal(t, want.Assignment, got.Assignment)
}

func TestSolve_PassesSolverErrors(t *testing.T) {
	_, err := matrixio.Solve(matrixio.Matrix{Cost: [][]float64{{1, 2, 3}, {4, 5}}}, hungarian.DefaultOptions())
	require.ErrorIs(t, err, hungarian.ErrNonSquare)

	_, err = matrixio.Solve(matrixio.Matrix{}, hungarian.DefaultOptions())
	require.ErrorIs(t, err, hungarian.ErrEmptyMatrix)

	_, err = matrixio.Solve(matrixio.Matrix{Cost: [][]float64{{0.5, 1}, {1, 0.5}}}, hungarian.Options{Eps: 2})
	require.ErrorIs(t, err, hungarian.ErrBadOptions)
}
