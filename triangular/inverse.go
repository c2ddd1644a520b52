// SPDX-License-Identifier: MIT
// Package triangular: triangular matrix inversion.
// Built directly on the substitution kernels: one unit-basis solve per output
// column. The inverse of a (lower/upper) triangular matrix is triangular with
// the same orientation, which the column solves reproduce for free.

package triangular

// InverseLower computes L⁻¹ for a lower-triangular L.
// Implementation:
//   - Stage 1: ValidateMatrix(l, n); allocate the n×n result and two length-n
//     scratch vectors.
//   - Stage 2: For col=0..n-1, solve L·X_col = e_col (unit basis vector) by
//     forward substitution and write X_col into column col of the result.
//
// Behavior highlights:
//   - Uses the exact SolveLower recurrence, so a singular L (exactly-zero
//     diagonal) produces NaN columns rather than an error; callers should
//     check Rank or Determinant first.
//   - Deterministic col↑ then i↑ traversal.
//
// Inputs:
//   - l: flat row-major n×n lower-triangular matrix.
//   - n: matrix size (> 0).
//
// Returns:
//   - []float64: freshly allocated flat row-major n×n inverse.
//   - error    : structural violations wrapped with opInverseLower.
//
// Errors:
//   - ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch (from ValidateMatrix).
//
// Determinism:
//   - Fixed loop orders; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n³) (n solves of O(n²)), Space O(n²) for the result.
//
// AI-Hints:
//   - If you only ever need L⁻¹·b, call SolveLower directly; forming the
//     inverse is a last resort that squares the rounding surface.
func InverseLower(l []float64, n int) ([]float64, error) {
	// Validate the matrix contract once; the column solves then run unguarded.
	if err := ValidateMatrix(l, n); err != nil {
		return nil, triangularErrorf(opInverseLower, err)
	}

	inv := make([]float64, n*n)
	e := make([]float64, n) // unit basis vector, rebuilt per column
	x := make([]float64, n) // per-column solution scratch
	var col, i int          // loop iterators
	for col = 0; col < n; col++ {
		// Build e_col: a single 1 at position col.
		for i = 0; i < n; i++ {
			e[i] = 0
		}
		e[col] = UnitDiagonal
		// Solve L·x = e_col with the canonical forward recurrence.
		solveLowerInto(l, e, x, n)
		// Scatter x into column col of the inverse.
		for i = 0; i < n; i++ {
			inv[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// InverseUpper computes U⁻¹ for an upper-triangular U: one back-substitution
// solve per unit basis column. Same contract, NaN-on-singular behavior and
// error surface as InverseLower (opInverseUpper tag).
// Time O(n³), Space O(n²).
func InverseUpper(u []float64, n int) ([]float64, error) {
	if err := ValidateMatrix(u, n); err != nil {
		return nil, triangularErrorf(opInverseUpper, err)
	}

	inv := make([]float64, n*n)
	e := make([]float64, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			e[i] = 0
		}
		e[col] = UnitDiagonal
		solveUpperInto(u, e, x, n)
		for i = 0; i < n; i++ {
			inv[i*n+col] = x[i]
		}
	}

	return inv, nil
}
