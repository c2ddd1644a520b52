// SPDX-License-Identifier: MIT
// Package triangular provides forward/back substitution kernels over flat
// row-major float64 buffers, plus the unit-diagonal and multi-RHS variants.
// All functions perform strict fail-fast validation and return clear errors
// on contract violations; numeric singularity is signaled by NaN, never by
// an error (partial singularity is a normal occurrence during iterative
// refinement in the surrounding factorization pipeline).
//
// Purpose:
//   - Declare the canonical substitution kernels (signatures) used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Specialized kernels (banded, inverse, diagnostics) live in dedicated
//     files (same package) to keep roles clean.
//   - All kernels use the central validators and return plain sentinels
//     wrapped via triangularErrorf at the facade.

package triangular

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for substitution sums.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly-zero diagonal entry.
// Detection is strict equality: a 1e-300 diagonal still divides.
const ZeroPivot = 0.0

// UnitDiagonal is the implied diagonal value in the *Unit kernel variants.
const UnitDiagonal = 1.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolveLower         = "SolveLower"
	opSolveUpper         = "SolveUpper"
	opSolveLowerUnit     = "SolveLowerUnit"
	opSolveUpperUnit     = "SolveUpperUnit"
	opSolveLowerMultiple = "SolveLowerMultiple"
	opSolveUpperMultiple = "SolveUpperMultiple"
	opSolveLowerBanded   = "SolveLowerBanded"
	opSolveUpperBanded   = "SolveUpperBanded"
	opInverseLower       = "InverseLower"
	opInverseUpper       = "InverseUpper"
	opDeterminant        = "Determinant"
	opRank               = "Rank"
)

// triangularErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
func triangularErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// solveLowerInto runs the forward-substitution recurrence into x.
// Contract (enforced by callers): len(l) == n*n, len(b) == len(x) == n.
// An exactly-zero diagonal entry yields x[i] = NaN and the sweep continues;
// the NaN propagates through every dependent row below.
// Deterministic i↑, j↑ order. Time O(n²), Space O(1) beyond x.
func solveLowerInto(l, b, x []float64, n int) {
	var (
		i, j, base int     // row, column, flat row offset
		sum, pivot float64 // accumulator and diagonal entry
	)
	for i = 0; i < n; i++ { // rows in dependency order, top-down
		base = i * n
		sum = ZeroSum
		for j = 0; j < i; j++ { // strictly-lower part of row i
			sum += l[base+j] * x[j]
		}
		pivot = l[base+i]
		if pivot == ZeroPivot {
			// Deliberate signal, not an exception: mark and keep sweeping.
			x[i] = math.NaN()
			continue
		}
		x[i] = (b[i] - sum) / pivot
	}
}

// solveUpperInto mirrors solveLowerInto for upper-triangular systems:
// rows bottom-up, columns j > i. Same NaN-on-exact-zero policy.
func solveUpperInto(u, b, x []float64, n int) {
	var (
		i, j, base int
		sum, pivot float64
	)
	for i = n - 1; i >= 0; i-- { // rows in dependency order, bottom-up
		base = i * n
		sum = ZeroSum
		for j = i + 1; j < n; j++ { // strictly-upper part of row i
			sum += u[base+j] * x[j]
		}
		pivot = u[base+i]
		if pivot == ZeroPivot {
			x[i] = math.NaN()
			continue
		}
		x[i] = (b[i] - sum) / pivot
	}
}

// solveLowerUnitInto is solveLowerInto with the diagonal assumed to be 1:
// no division and no zero-pivot branch. The stored diagonal is ignored.
func solveLowerUnitInto(l, b, x []float64, n int) {
	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < n; i++ {
		base = i * n
		sum = ZeroSum
		for j = 0; j < i; j++ {
			sum += l[base+j] * x[j]
		}
		x[i] = b[i] - sum // divide by the implied UnitDiagonal
	}
}

// solveUpperUnitInto mirrors solveLowerUnitInto bottom-up.
func solveUpperUnitInto(u, b, x []float64, n int) {
	var (
		i, j, base int
		sum        float64
	)
	for i = n - 1; i >= 0; i-- {
		base = i * n
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += u[base+j] * x[j]
		}
		x[i] = b[i] - sum
	}
}

// SolveLower solves L·x = b by forward substitution for a lower-triangular L.
// Implementation:
//   - Stage 1: ValidateSystem(l, b, n); allocate x of length n.
//   - Stage 2: For i=0..n-1, x[i] = (b[i] − Σ_{j<i} L[i,j]·x[j]) / L[i,i].
//
// Behavior highlights:
//   - Entries above the diagonal are ignored by convention, never read.
//   - L[i,i] == 0.0 EXACTLY ⇒ x[i] = NaN and the sweep continues; the NaN is
//     allowed to propagate through dependent rows. Equality, not tolerance,
//     triggers this branch: near-singular systems still produce an ordinary,
//     possibly ill-conditioned, numeric answer.
//   - Input buffers are never mutated.
//
// Inputs:
//   - l: flat row-major n×n lower-triangular matrix.
//   - b: right-hand side of length n.
//   - n: system size (> 0).
//
// Returns:
//   - []float64: freshly allocated solution vector x of length n.
//   - error    : structural violations wrapped with opSolveLower.
//
// Errors:
//   - ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch (from ValidateSystem).
//
// Determinism:
//   - Fixed i↑, j↑ loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n²), Space O(n) for x.
//
// AI-Hints:
//   - Check Rank/Determinant first if NaN outputs must be avoided.
//   - For many right-hand sides against the same L, prefer SolveLowerMultiple
//     to amortize validation.
func SolveLower(l, b []float64, n int) ([]float64, error) {
	// Validate the flat-buffer contract before touching any data.
	if err := ValidateSystem(l, b, n); err != nil {
		return nil, triangularErrorf(opSolveLower, err)
	}

	// Allocate the result and run the recurrence.
	x := make([]float64, n)
	solveLowerInto(l, b, x, n)

	return x, nil
}

// SolveUpper solves U·x = b by back substitution for an upper-triangular U.
// Mirrors SolveLower with i=n-1..0 and j>i; entries below the diagonal are
// ignored by convention. Same exact-zero ⇒ NaN policy, same error surface
// (wrapped with opSolveUpper). Time O(n²), Space O(n).
func SolveUpper(u, b []float64, n int) ([]float64, error) {
	if err := ValidateSystem(u, b, n); err != nil {
		return nil, triangularErrorf(opSolveUpper, err)
	}

	x := make([]float64, n)
	solveUpperInto(u, b, x, n)

	return x, nil
}

// SolveLowerUnit solves L·x = b assuming a unit diagonal (L[i,i] ≡ 1).
// Implementation:
//   - Stage 1: ValidateSystem(l, b, n); allocate x.
//   - Stage 2: x[i] = b[i] − Σ_{j<i} L[i,j]·x[j] — no division at all.
//
// Behavior highlights:
//   - The stored diagonal is ignored, not checked: callers holding a packed
//     LU factor (unit diagonal implicit) pass it as-is.
//   - No zero-pivot branch exists, so the result is always finite for finite
//     inputs.
//
// Errors:
//   - ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n).
func SolveLowerUnit(l, b []float64, n int) ([]float64, error) {
	if err := ValidateSystem(l, b, n); err != nil {
		return nil, triangularErrorf(opSolveLowerUnit, err)
	}

	x := make([]float64, n)
	solveLowerUnitInto(l, b, x, n)

	return x, nil
}

// SolveUpperUnit solves U·x = b assuming a unit diagonal, bottom-up.
// Same contract and error surface as SolveLowerUnit (opSolveUpperUnit tag).
func SolveUpperUnit(u, b []float64, n int) ([]float64, error) {
	if err := ValidateSystem(u, b, n); err != nil {
		return nil, triangularErrorf(opSolveUpperUnit, err)
	}

	x := make([]float64, n)
	solveUpperUnitInto(u, b, x, n)

	return x, nil
}
