// SPDX-License-Identifier: MIT
// Package triangular: simultaneous multi-RHS substitution.
// The n×m right-hand-side block is solved column by column with the exact
// single-RHS recurrence, so every numeric policy (exact-zero ⇒ NaN,
// ignored off-triangle entries) carries over per column unchanged.

package triangular

// SolveLowerMultiple solves L·X = B for an n×m right-hand-side block B.
// Implementation:
//   - Stage 1: ValidateMultiple(l, bs, n, m); allocate the n×m result and two
//     length-n scratch columns.
//   - Stage 2: For c=0..m-1, gather column c of bs, run forward substitution,
//     scatter the solution into column c of the result.
//
// Behavior highlights:
//   - Column order c↑ is fixed; columns are independent, so a NaN produced by
//     a zero pivot in one column never leaks into another.
//   - bs is row-major (bs[i*m+c] is row i of RHS c), matching the matrix
//     layout used everywhere in this package.
//
// Inputs:
//   - l : flat row-major n×n lower-triangular matrix.
//   - bs: flat row-major n×m block of m right-hand sides.
//   - n : system size (> 0).
//   - m : number of right-hand sides (> 0).
//
// Returns:
//   - []float64: freshly allocated n×m row-major solution block X.
//   - error    : structural violations wrapped with opSolveLowerMultiple.
//
// Errors:
//   - ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch (from ValidateMultiple).
//
// Determinism:
//   - Fixed c↑ then i↑ traversal; stable across runs.
//
// Complexity:
//   - Time O(m·n²), Space O(n·m) for X plus O(n) scratch.
//
// AI-Hints:
//   - Gathering columns into contiguous scratch keeps the inner substitution
//     loop stride-1; do not "optimize" by indexing bs directly in the kernel.
func SolveLowerMultiple(l, bs []float64, n, m int) ([]float64, error) {
	// Validate the matrix and the RHS block shape in one composite pass.
	if err := ValidateMultiple(l, bs, n, m); err != nil {
		return nil, triangularErrorf(opSolveLowerMultiple, err)
	}

	// Allocate result block and contiguous per-column scratch.
	xs := make([]float64, n*m)
	col := make([]float64, n) // gathered RHS column
	sol := make([]float64, n) // solved column
	var c, i int              // loop iterators (deterministic order)
	for c = 0; c < m; c++ {
		// Gather column c of bs into contiguous scratch.
		for i = 0; i < n; i++ {
			col[i] = bs[i*m+c]
		}
		// Solve against the gathered column.
		solveLowerInto(l, col, sol, n)
		// Scatter the solution into column c of xs.
		for i = 0; i < n; i++ {
			xs[i*m+c] = sol[i]
		}
	}

	return xs, nil
}

// SolveUpperMultiple solves U·X = B for an n×m right-hand-side block,
// column by column with back substitution. Same contract, determinism and
// error surface as SolveLowerMultiple (opSolveUpperMultiple tag).
// Time O(m·n²), Space O(n·m).
func SolveUpperMultiple(u, bs []float64, n, m int) ([]float64, error) {
	if err := ValidateMultiple(u, bs, n, m); err != nil {
		return nil, triangularErrorf(opSolveUpperMultiple, err)
	}

	xs := make([]float64, n*m)
	col := make([]float64, n)
	sol := make([]float64, n)
	var c, i int
	for c = 0; c < m; c++ {
		for i = 0; i < n; i++ {
			col[i] = bs[i*m+c]
		}
		solveUpperInto(u, col, sol, n)
		for i = 0; i < n; i++ {
			xs[i*m+c] = sol[i]
		}
	}

	return xs, nil
}
