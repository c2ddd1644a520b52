// Package triangular solves triangular linear systems over flat row-major
// float64 buffers: forward/back substitution, unit-diagonal and multi-RHS
// variants, bandwidth-restricted solves, triangular inversion, and the
// O(n) diagonal diagnostics (determinant, rank).
//
// 🚀 What is it for?
//
//	Triangular substitution is the final step after LU-style factorization:
//	once A = L·U, solving A·x = b reduces to two O(n²) sweeps. This package
//	is the substitution engine a surrounding matrix library calls with its
//	buffers flattened to plain []float64 — no matrix object model leaks in.
//
// ✨ Key features:
//   - SolveLower / SolveUpper — the canonical O(n²) recurrences
//   - SolveLowerUnit / SolveUpperUnit — diagonal assumed 1, zero divisions
//   - SolveLowerMultiple / SolveUpperMultiple — n×m RHS blocks, column by column
//   - SolveLowerBanded / SolveUpperBanded — inner sums clipped to the band
//   - InverseLower / InverseUpper — one unit-basis solve per output column
//   - Determinant / Rank — O(n) diagonal scans, never fail past validation
//
// ⚙️ Numeric policy:
//
//	An EXACTLY zero diagonal entry (== 0.0, equality not tolerance) makes the
//	affected unknown NaN and the sweep continues — a deliberate signal that
//	propagates through dependent rows, never an error or panic. Near-zero
//	diagonals divide normally and yield an ordinary ill-conditioned answer.
//	Rank takes an injectable tolerance (DefaultTolerance = 1e-14) via
//	WithTolerance; the solve kernels themselves never consult it.
//
//	For a full solution-set description of singular systems (free variables,
//	consistency, null-space basis) see the sibling package solveset.
//
// Usage:
//
//	import "github.com/katalvlaran/trisolve/triangular"
//
//	l := []float64{2, 0, 3, 4} // [[2,0],[3,4]] row-major
//	x, err := triangular.SolveLower(l, []float64{4, 11}, 2)
//	// x = [2, 1.25]
//
// Performance:
//
//   - Substitution: O(n²) time, O(n) extra space
//   - Banded:       O(n·bw) time
//   - Inversion:    O(n³) time, O(n²) space
//   - Diagnostics:  O(n) time
//
// Every function is a pure, synchronous operation over caller-owned buffers;
// independent calls are safe to run concurrently because no state is shared.
package triangular
