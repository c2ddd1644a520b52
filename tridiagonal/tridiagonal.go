// SPDX-License-Identifier: MIT
// Package tridiagonal: the Thomas elimination kernel.

package tridiagonal

import "fmt"

// opSolve tags all errors produced by Solve for uniform reporting.
const opSolve = "Solve"

// tridiagonalErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func tridiagonalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSystem checks the four-slice calling convention: every slice is
// non-nil and shares the main diagonal's length n ≥ 1. Returns plain
// sentinels for the facade to wrap. Time O(1).
func validateSystem(sub, diag, super, rhs []float64) error {
	if sub == nil || diag == nil || super == nil || rhs == nil {
		return ErrNilBuffer
	}
	n := len(diag)
	if n == 0 {
		return ErrEmptySystem
	}
	if len(sub) != n || len(super) != n || len(rhs) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// Solve solves the tridiagonal system A·x = rhs with the Thomas algorithm,
// where A has sub-diagonal sub, main diagonal diag and super-diagonal super.
// Implementation:
//   - Stage 1: validateSystem — all four slices non-nil, length n = len(diag).
//   - Stage 2: Forward sweep. cp[0] = super[0]/diag[0], dp[0] = rhs[0]/diag[0];
//     for i ≥ 1: den = diag[i] − sub[i]·cp[i-1], cp[i] = super[i]/den (i < n-1
//     only), dp[i] = (rhs[i] − sub[i]·dp[i-1]) / den.
//   - Stage 3: Back substitution. x[n-1] = dp[n-1]; for i = n-2..0:
//     x[i] = dp[i] − cp[i]·x[i+1].
//
// Behavior highlights:
//   - All four slices share length n; sub[0] and super[n-1] exist only to
//     keep indexing aligned and are never read.
//   - NO singularity guard: a zero denominator yields ±Inf/NaN that propagate
//     through the remaining sweep. Use triangular.SolveLower on the densified
//     matrix when singularity detection matters.
//   - Inputs are never mutated; the sweeps run in fresh work buffers.
//
// Inputs:
//   - sub  : sub-diagonal, sub[i] multiplies x[i-1] in row i (sub[0] ignored).
//   - diag : main diagonal, length n defines the system size.
//   - super: super-diagonal, super[i] multiplies x[i+1] in row i
//     (super[n-1] ignored).
//   - rhs  : right-hand side of length n.
//
// Returns:
//   - []float64: freshly allocated solution vector x of length n.
//   - error    : structural violations wrapped with opSolve.
//
// Errors:
//   - ErrNilBuffer, ErrEmptySystem, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed forward i↑ then backward i↓ sweeps; bit-stable across runs.
//
// Complexity:
//   - Time O(n), Space O(n) for the two work buffers and x.
//
// AI-Hints:
//   - The sweep is stable for diagonally dominant systems (|diag[i]| ≥
//     |sub[i]|+|super[i]|); outside that class prefer a pivoting solver.
func Solve(sub, diag, super, rhs []float64) ([]float64, error) {
	// Validate the four-slice calling convention up front.
	if err := validateSystem(sub, diag, super, rhs); err != nil {
		return nil, tridiagonalErrorf(opSolve, err)
	}

	n := len(diag)
	if n == 1 {
		return []float64{rhs[0] / diag[0]}, nil
	}

	cp := make([]float64, n) // normalized super-diagonal c'
	dp := make([]float64, n) // normalized right-hand side d'

	// Forward sweep: eliminate the sub-diagonal row by row.
	cp[0] = super[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	var i int
	var den float64
	for i = 1; i < n; i++ {
		den = diag[i] - sub[i]*cp[i-1] // zero den propagates Inf/NaN downstream
		if i < n-1 {
			cp[i] = super[i] / den
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / den
	}

	// Back substitution over the normalized bidiagonal system.
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i = n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}

	return x, nil
}
