// SPDX-License-Identifier: MIT
// Package hungarian: shortest augmenting paths with dual potentials.
//
// Rows are inserted one at a time. For each new row a Dijkstra-like sweep
// over columns keeps minv[j] = min reduced cost to reach column j, raises
// the potentials of the visited part by δ, and stops at the first free
// column; the path is then flipped. Arrays are 1-indexed so that column 0
// can act as the virtual source.

package hungarian

// solvePotentials returns an optimal assignment for a validated cost matrix.
//
// Complexity: O(n³) time, O(n) extra space.
func solvePotentials[T Number](cost [][]T) ([]int, error) {
	var (
		n    = len(cost)
		u    = make([]T, n+1) // row potentials
		v    = make([]T, n+1) // column potentials
		p    = make([]int, n+1)
		way  = make([]int, n+1)
		minv = make([]T, n+1)
		seen = make([]bool, n+1) // minv[j] holds a real value
		used = make([]bool, n+1)
	)

	var (
		i, j, i0, j0, j1 int
		delta, cur       T
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			seen[j] = false
			used[j] = false
		}

		for {
			used[j0] = true
			i0 = p[j0]
			j1 = Unassigned
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = cost[i0-1][j-1] - u[i0] - v[j]
				if !seen[j] || cur < minv[j] {
					minv[j] = cur
					seen[j] = true
					way[j] = j0
				}
				if j1 == Unassigned || minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == Unassigned {
				return nil, invariantf("potentials: no free column for row %d", i-1)
			}
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the path back to the virtual column.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = Unassigned
	}
	for j = 1; j <= n; j++ {
		if p[j] > 0 {
			out[p[j]-1] = j - 1
		}
	}

	return out, nil
}
