// SPDX-License-Identifier: MIT
// Package solveset: the singular-system resolver.
// Generalizes plain forward/back substitution to possibly-non-invertible
// triangular systems: detect free rows, verify consistency, build a
// particular solution and one null-space basis vector per free row.

package solveset

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opSolveLowerAll = "SolveLowerAll"
	opSolveUpperAll = "SolveUpperAll"
)

// zeroUnknown is the value a free unknown is fixed to in the particular
// solution and in every basis column where it is not the designated one.
const zeroUnknown = 0.0

// unitUnknown is the value the designated free unknown takes in its own
// basis column.
const unitUnknown = 1.0

// ZeroResidual is the homogeneous right-hand side value used when rebuilding
// null-space columns.
const ZeroResidual = 0.0

// solvesetErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func solvesetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSystem checks the flat-buffer contract: n > 0, both slices non-nil,
// len(t) == n*n and len(b) == n. Returns plain sentinels. Time O(1).
func validateSystem(t, b []float64, n int) error {
	if n <= 0 {
		return ErrInvalidSize
	}
	if t == nil || b == nil {
		return ErrNilBuffer
	}
	if len(t) != n*n {
		return ErrDimensionMismatch
	}
	if len(b) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// detectFree scans the diagonal and returns the free-row mask plus the free
// row indices in ascending order. Row i is free iff |t[i,i]| < tol (strict).
// Deterministic i↑ scan. Time O(n).
func detectFree(t []float64, n int, tol float64) ([]bool, []int) {
	free := make([]bool, n)
	var rows []int
	for i := 0; i < n; i++ {
		if math.Abs(t[i*n+i]) < tol {
			free[i] = true
			rows = append(rows, i) // ascending by construction
		}
	}

	return free, rows
}

// inconsistentSet is the canonical empty result: zero generator columns,
// Info{0, 0, false}. Data is non-nil but empty so len() math stays safe.
func inconsistentSet(n int) SolutionSet {
	return SolutionSet{
		N:    n,
		Cols: 0,
		Data: []float64{},
		Info: Info{Solutions: 0, FreeVars: 0, Consistent: false},
	}
}

// resolveLower runs the full lower-triangular resolution: particular pass
// with per-free-row consistency checks, then one homogeneous pass per free
// row. Returns (set, true) on success or (empty, false) on inconsistency.
// Contract enforced by the facade: len(l) == n*n, len(b) == n, tol ≥ 0.
func resolveLower(l, b []float64, n int, tol float64) (SolutionSet, bool) {
	free, freeRows := detectFree(l, n, tol)

	// Particular pass: the ordinary forward recurrence, except a free row
	// does NOT divide — it verifies its residual and pins the unknown to 0.
	x := make([]float64, n)
	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < n; i++ {
		base = i * n
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= l[base+j] * x[j]
		}
		if free[i] {
			// A free row imposes a pure constraint: residual must vanish.
			if math.Abs(sum) > tol {
				return inconsistentSet(n), false
			}
			x[i] = zeroUnknown
			continue
		}
		x[i] = sum / l[base+i]
	}

	// Assemble the generator block: particular column plus one basis column
	// per free row, ascending row-index order fixing the correspondence.
	k := len(freeRows)
	cols := 1 + k
	data := make([]float64, n*cols)
	for i = 0; i < n; i++ {
		data[i*cols] = x[i]
	}

	z := make([]float64, n) // homogeneous-pass scratch, reused per column
	var t, m int
	for t, m = range freeRows {
		// Re-run the forward recurrence on the homogeneous system with
		// unknown m forced to 1 and every other free unknown forced to 0.
		for i = 0; i < n; i++ {
			if i == m {
				z[i] = unitUnknown
				continue
			}
			if free[i] {
				// A row whose own diagonal is zero and which is not the
				// designated free row defaults to 0 (multiply-singular case).
				z[i] = zeroUnknown
				continue
			}
			base = i * n
			sum = ZeroResidual
			for j = 0; j < i; j++ {
				sum -= l[base+j] * z[j]
			}
			z[i] = sum / l[base+i]
		}
		// Scatter z into generator column 1+t.
		for i = 0; i < n; i++ {
			data[i*cols+1+t] = z[i]
		}
	}

	return SolutionSet{
		N:    n,
		Cols: cols,
		Data: data,
		Info: Info{Solutions: cols, FreeVars: k, Consistent: true},
	}, true
}

// resolveUpper mirrors resolveLower for upper-triangular systems: the
// dependency order is bottom-up (i = n-1..0, j > i). Basis columns still map
// to free rows in ASCENDING row-index order, independent of sweep direction,
// so the free-index ↔ column correspondence is identical for both
// orientations.
func resolveUpper(u, b []float64, n int, tol float64) (SolutionSet, bool) {
	free, freeRows := detectFree(u, n, tol)

	x := make([]float64, n)
	var (
		i, j, base int
		sum        float64
	)
	for i = n - 1; i >= 0; i-- {
		base = i * n
		sum = b[i]
		for j = i + 1; j < n; j++ {
			sum -= u[base+j] * x[j]
		}
		if free[i] {
			if math.Abs(sum) > tol {
				return inconsistentSet(n), false
			}
			x[i] = zeroUnknown
			continue
		}
		x[i] = sum / u[base+i]
	}

	k := len(freeRows)
	cols := 1 + k
	data := make([]float64, n*cols)
	for i = 0; i < n; i++ {
		data[i*cols] = x[i]
	}

	z := make([]float64, n)
	var t, m int
	for t, m = range freeRows {
		for i = n - 1; i >= 0; i-- {
			if i == m {
				z[i] = unitUnknown
				continue
			}
			if free[i] {
				z[i] = zeroUnknown
				continue
			}
			base = i * n
			sum = ZeroResidual
			for j = i + 1; j < n; j++ {
				sum -= u[base+j] * z[j]
			}
			z[i] = sum / u[base+i]
		}
		for i = 0; i < n; i++ {
			data[i*cols+1+t] = z[i]
		}
	}

	return SolutionSet{
		N:    n,
		Cols: cols,
		Data: data,
		Info: Info{Solutions: cols, FreeVars: k, Consistent: true},
	}, true
}

// SolveLowerAll solves L·x = b for a possibly singular lower-triangular L and
// returns the full solution-set description instead of failing on zero pivots.
// Implementation:
//   - Stage 1: validateSystem(l, b, n); resolve options (tolerance).
//   - Stage 2: Free-row detection — row i is free iff |L[i,i]| < tol;
//     particular pass in dependency order (free rows check their residual and
//     pin the unknown to 0); on a violated residual the system is
//     inconsistent and resolution stops.
//   - Stage 3: For each free row m in ascending order, rebuild the forward
//     recurrence on the homogeneous system with unknown m forced to 1, every
//     other free unknown forced to 0, and every non-free unknown solved by
//     ordinary division — one null-space basis column per free row.
//
// Behavior highlights:
//   - Inconsistency is a VALUE: Info{0, 0, false} with an empty generator
//     block and a nil error. Structural misuse is the only error source.
//   - Ascending free-row order fixes a deterministic correspondence between
//     free index and basis column; a path dispatcher preserving the tolerance
//     gets path-independent results.
//   - Never approximates: no least-squares fallback, no tolerance-widening.
//
// Inputs:
//   - l   : flat row-major n×n lower-triangular matrix.
//   - b   : right-hand side of length n.
//   - n   : system size (> 0).
//   - opts: WithTolerance to override DefaultTolerance (1e-14).
//
// Returns:
//   - SolutionSet: generator block + Info (see package doc for the model).
//   - error      : structural violations wrapped with opSolveLowerAll.
//
// Errors:
//   - ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i↑/j↑ sweeps and ascending free-row order; bit-stable outputs.
//
// Complexity:
//   - Time O((1+k)·n²) for k free rows, Space O(n·(1+k)).
//
// Notes:
//   - Multiply-singular caveat: when a free row carries non-zero off-diagonal
//     entries in another free row's column, the specified basis rule can emit
//     a column with L·z ≠ 0. Such interacting-free-row inputs should be
//     validated against an independent null-space routine by the caller; for
//     free rows that are structurally zero (the common LU-output shape) every
//     basis column is exact.
//
// AI-Hints:
//   - Gate on Info.Consistent before reading columns; Particular()/Basis()
//     return ErrColumnOutOfRange on an empty set rather than panicking.
//   - Reconstruct the full set as particular + Σ c_m·Basis(m).
func SolveLowerAll(l, b []float64, n int, opts ...Option) (SolutionSet, error) {
	// Validate the flat-buffer contract before touching any data.
	if err := validateSystem(l, b, n); err != nil {
		return SolutionSet{}, solvesetErrorf(opSolveLowerAll, err)
	}
	// Resolve the numeric policy for this call.
	o := gatherOptions(opts...)

	set, _ := resolveLower(l, b, n, o.tol)

	return set, nil
}

// SolveUpperAll solves U·x = b for a possibly singular upper-triangular U,
// mirroring SolveLowerAll with the bottom-up recurrence (i = n-1..0, j > i).
// Basis columns correspond to free rows in ascending row-index order exactly
// as in the lower variant. Same error surface (opSolveUpperAll tag), same
// determinism and complexity, same multiply-singular caveat.
func SolveUpperAll(u, b []float64, n int, opts ...Option) (SolutionSet, error) {
	if err := validateSystem(u, b, n); err != nil {
		return SolutionSet{}, solvesetErrorf(opSolveUpperAll, err)
	}
	o := gatherOptions(opts...)

	set, _ := resolveUpper(u, b, n, o.tol)

	return set, nil
}
