// SPDX-License-Identifier: MIT

// Package solveset: result types for the singular-system resolver.
package solveset

// Info summarizes the structure of a resolved solution set.
//
// Fields:
//   - Solutions  — number of generator columns: 0 (inconsistent), 1 (unique),
//     or 1+k (particular solution plus k null-space basis vectors).
//   - FreeVars   — number of free variables k detected on the diagonal.
//   - Consistent — false iff some free row's residual exceeded the tolerance,
//     i.e. no exact solution exists.
//
// Info is a plain value; compare it directly in tests and dispatch logic.
type Info struct {
	Solutions  int
	FreeVars   int
	Consistent bool
}

// SolutionSet is the full affine description of a triangular system's
// solutions: an N×Cols row-major block of generator columns plus its Info.
//
//   - Consistent unique:   Cols == 1, the single column is the solution.
//   - Consistent singular: Cols == 1+Info.FreeVars; column 0 is a particular
//     solution, columns 1.. are null-space basis vectors in ascending order
//     of their free row index (deterministic correspondence).
//   - Inconsistent:        Cols == 0 and Data is empty.
//
// Any true solution equals Particular() plus an arbitrary linear combination
// of the basis columns. The struct is immutable by convention: accessors
// return fresh copies and Data should be treated as read-only.
type SolutionSet struct {
	N    int       // system size (rows)
	Cols int       // generator columns: 0, 1, or 1+FreeVars
	Data []float64 // flat row-major N×Cols generator block
	Info Info      // structural summary
}

// Column returns a fresh copy of generator column c.
//
// Errors: ErrColumnOutOfRange when c < 0 or c >= Cols (always the case on an
// inconsistent set). Complexity: O(N).
func (s SolutionSet) Column(c int) ([]float64, error) {
	if c < 0 || c >= s.Cols {
		return nil, ErrColumnOutOfRange
	}

	col := make([]float64, s.N)
	for i := 0; i < s.N; i++ {
		col[i] = s.Data[i*s.Cols+c]
	}

	return col, nil
}

// Particular returns a fresh copy of the particular solution (column 0).
//
// Errors: ErrColumnOutOfRange on an inconsistent (empty) set.
// Complexity: O(N).
func (s SolutionSet) Particular() ([]float64, error) {
	return s.Column(0)
}

// Basis returns a fresh copy of the t-th null-space basis vector (column
// 1+t), where t ranges over [0, Info.FreeVars) in ascending free-row order.
//
// Errors: ErrColumnOutOfRange when t is outside that range.
// Complexity: O(N).
func (s SolutionSet) Basis(t int) ([]float64, error) {
	if t < 0 || t >= s.Info.FreeVars {
		return nil, ErrColumnOutOfRange
	}

	return s.Column(1 + t)
}
