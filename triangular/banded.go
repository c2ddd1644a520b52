// SPDX-License-Identifier: MIT
// Package triangular: bandwidth-restricted substitution.
// The recurrence is numerically identical to the dense kernels in solve.go —
// only the inner-sum window shrinks to the indices known to lie inside the
// band. The caller guarantees out-of-band entries are zero; the kernels do
// not verify this (an honest bandwidth claim makes the banded and dense
// results identical, a dishonest one silently drops terms).

package triangular

import "math"

// SolveLowerBanded solves L·x = b for a lower-triangular L with bandwidth bw:
// L[i,j] == 0 whenever i−j > bw (caller's guarantee).
// Implementation:
//   - Stage 1: ValidateSystem(l, b, n) → ValidateBandwidth(bw); allocate x.
//   - Stage 2: For i=0..n-1, sum only j ∈ [max(0, i−bw), i), then divide by
//     L[i,i] with the same exact-zero ⇒ NaN policy as SolveLower.
//
// Behavior highlights:
//   - bw ≥ n−1 degenerates to the dense recurrence (window never clips).
//   - Results are bit-identical to SolveLower when the bandwidth claim holds,
//     because the skipped products are exact zeros in the dense sum too.
//
// Inputs:
//   - l        : flat row-major n×n lower-triangular matrix.
//   - b        : right-hand side of length n.
//   - n        : system size (> 0).
//   - bandwidth: number of sub-diagonals that may be non-zero (≥ 0).
//
// Returns:
//   - []float64: freshly allocated solution vector of length n.
//   - error    : structural violations wrapped with opSolveLowerBanded.
//
// Errors:
//   - ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch, ErrNegativeBandwidth.
//
// Determinism:
//   - Fixed i↑, j↑ window traversal.
//
// Complexity:
//   - Time O(n·min(bw, n)), Space O(n).
//
// AI-Hints:
//   - This kernel still reads the full n×n buffer layout; it saves work, not
//     memory. A packed band layout belongs to the caller's storage layer.
func SolveLowerBanded(l, b []float64, n, bandwidth int) ([]float64, error) {
	// Validate the dense-system contract first, then the band parameter.
	if err := ValidateSystem(l, b, n); err != nil {
		return nil, triangularErrorf(opSolveLowerBanded, err)
	}
	if err := ValidateBandwidth(bandwidth); err != nil {
		return nil, triangularErrorf(opSolveLowerBanded, err)
	}

	x := make([]float64, n)
	var (
		i, j, lo, base int     // row, column, window start, flat row offset
		sum, pivot     float64 // accumulator and diagonal entry
	)
	for i = 0; i < n; i++ {
		base = i * n
		sum = ZeroSum
		// Window start: clip i-bw at the left edge of the matrix.
		lo = i - bandwidth
		if lo < 0 {
			lo = 0
		}
		for j = lo; j < i; j++ { // in-band strictly-lower entries only
			sum += l[base+j] * x[j]
		}
		pivot = l[base+i]
		if pivot == ZeroPivot {
			x[i] = math.NaN() // same deliberate signal as the dense kernel
			continue
		}
		x[i] = (b[i] - sum) / pivot
	}

	return x, nil
}

// SolveUpperBanded solves U·x = b for an upper-triangular U with bandwidth bw:
// U[i,j] == 0 whenever j−i > bw (caller's guarantee). The inner sum ranges
// over j ∈ (i, min(n, i+bw+1)); everything else mirrors SolveLowerBanded
// (opSolveUpperBanded tag). Time O(n·min(bw, n)), Space O(n).
func SolveUpperBanded(u, b []float64, n, bandwidth int) ([]float64, error) {
	if err := ValidateSystem(u, b, n); err != nil {
		return nil, triangularErrorf(opSolveUpperBanded, err)
	}
	if err := ValidateBandwidth(bandwidth); err != nil {
		return nil, triangularErrorf(opSolveUpperBanded, err)
	}

	x := make([]float64, n)
	var (
		i, j, hi, base int
		sum, pivot     float64
	)
	for i = n - 1; i >= 0; i-- {
		base = i * n
		sum = ZeroSum
		// Window end: clip i+bw+1 at the right edge of the matrix.
		hi = i + bandwidth + 1
		if hi > n {
			hi = n
		}
		for j = i + 1; j < hi; j++ { // in-band strictly-upper entries only
			sum += u[base+j] * x[j]
		}
		pivot = u[base+i]
		if pivot == ZeroPivot {
			x[i] = math.NaN()
			continue
		}
		x[i] = (b[i] - sum) / pivot
	}

	return x, nil
}
