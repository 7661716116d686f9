package hungarian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/hungarian"
)

// TestValidateAssignment covers permutation checks.
func TestValidateAssignment(t *testing.T) {
	tests := []struct {
		name       string
		assignment []int
		n          int
		ok         bool
	}{
		{"identity", []int{0, 1, 2}, 3, true},
		{"reversed", []int{2, 1, 0}, 3, true},
		{"single", []int{0}, 1, true},
		{"zero n", []int{}, 0, false},
		{"short", []int{0, 1}, 3, false},
		{"duplicate", []int{0, 0, 1}, 3, false},
		{"out of range", []int{0, 1, 3}, 3, false},
		{"unassigned sentinel", []int{0, hungarian.Unassigned, 1}, 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := hungarian.ValidateAssignment(tc.assignment, tc.n)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, hungarian.ErrInvalidAssignment)
		})
	}
}

// TestTotalCost prices a permutation and rejects bad shapes.
func TestTotalCost(t *testing.T) {
	cost := [][]int{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	got, err := hungarian.TotalCost(cost, []int{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = hungarian.TotalCost(cost, []int{1, 1, 2})
	assert.ErrorIs(t, err, hungarian.ErrInvalidAssignment)

	_, err = hungarian.TotalCost([][]int{{1, 2}}, []int{0})
	assert.ErrorIs(t, err, hungarian.ErrNonSquare)
}
