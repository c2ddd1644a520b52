// SPDX-License-Identifier: MIT
// Package triangular: diagonal diagnostics.
// Trivial O(n) scans used to sanity-check the solve/inverse kernels before
// committing to an O(n²)/O(n³) call on a possibly-singular matrix.

package triangular

import "math"

// Determinant returns the determinant of a triangular matrix: the raw
// product Π t[i,i] of the diagonal entries. Orientation (lower vs upper)
// does not matter. No tolerance is applied — the product is exact
// floating-point arithmetic and may underflow to ±0 for large n.
//
// Errors: ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch (wrapped with
// opDeterminant). Time O(n), Space O(1).
func Determinant(t []float64, n int) (float64, error) {
	if err := ValidateMatrix(t, n); err != nil {
		return 0, triangularErrorf(opDeterminant, err)
	}

	det := UnitDiagonal // empty product is 1
	for i := 0; i < n; i++ {
		det *= t[i*n+i]
	}

	return det, nil
}

// Rank returns the number of diagonal entries with |t[i,i]| > tol, the rank
// of a triangular matrix under the package's diagonal-scan model. The scan is
// identical for lower and upper orientation, so a single function serves
// both.
//
// Implementation:
//   - Stage 1: ValidateMatrix(t, n); resolve options (DefaultTolerance unless
//     WithTolerance overrides).
//   - Stage 2: Count strict |diag| > tol in fixed i↑ order.
//
// Behavior highlights:
//   - Strict > (not ≥): an entry exactly at the tolerance counts as zero,
//     matching the free-row test in the solveset package (|diag| < tol free).
//
// Returns:
//   - int  : rank in [0, n].
//   - error: structural violations wrapped with opRank.
//
// Errors:
//   - ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1). Never fails past validation.
//
// AI-Hints:
//   - Rank(t, n) < n predicts NaN output from the solve kernels and garbage
//     from the inverse kernels; gate expensive calls on it.
func Rank(t []float64, n int, opts ...Option) (int, error) {
	if err := ValidateMatrix(t, n); err != nil {
		return 0, triangularErrorf(opRank, err)
	}
	// Resolve the numeric policy (tolerance) for this call.
	o := gatherOptions(opts...)

	rank := 0
	for i := 0; i < n; i++ {
		if math.Abs(t[i*n+i]) > o.tol {
			rank++
		}
	}

	return rank, nil
}
