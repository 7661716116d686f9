// Package matrixio reads, writes and generates cost matrices for the
// hungarian solver.
//
// Formats:
//
//   - JSON: either a bare array of rows, [[4,1,3],[2,0,5]], or an object
//     with a "cost" field holding that array.
//   - CSV : one row per record; blank lines are skipped, cells trimmed.
//   - TOML: a top-level key: cost = [[4, 1, 3], [2, 0, 5]].
//
// Decoding checks what a form would check before calling the solver:
// every cell parses to a finite, non-negative number. Squareness is left to
// the solver, which reports it with its own sentinel.
//
// Random generates deterministic integer matrices (same seed ⇒ same matrix).
//
// Solve hands a decoded Matrix to the solver, on int64 when every cell is a
// whole number and on float64 otherwise.
package matrixio
