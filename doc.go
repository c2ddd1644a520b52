// Package trisolve is a numeric kernel library for triangular linear
// systems — the substitution engine a larger matrix/LU library calls after
// factorization, plus a resolver that fully characterizes singular systems.
//
// 🚀 What is trisolve?
//
//	A deterministic, allocation-light family of solvers over flat row-major
//	[]float64 buffers:
//		• Substitution: forward/back solves, unit-diagonal & multi-RHS variants
//		• Banded solves: same recurrence, inner sums clipped to the bandwidth
//		• Tridiagonal: Thomas algorithm, fully specialized O(n) elimination
//		• Inversion: triangular inverse via one unit-basis solve per column
//		• Solution sets: free variables, consistency, null-space basis for
//		  singular systems — inconsistent / unique / affine family
//		• Diagnostics: O(n) determinant and rank scans of the diagonal
//
// ✨ Why choose trisolve?
//
//   - Deterministic by construction – fixed loop orders, no pivoting, no
//     global state; identical inputs give bit-identical outputs on any backend
//   - Honest about singularity – exact-zero pivots signal NaN, singular
//     systems get an explicit solution-set description, and inconsistency is
//     a reported value, never a silent least-squares approximation
//   - Decoupled – plain buffers in, plain buffers out; no matrix object
//     model, no I/O, no hidden deps in the kernels
//
// Everything is organized under three subpackages:
//
//	triangular/  — dense, unit, multi-RHS and banded substitution; inversion;
//	               determinant & rank diagnostics
//	tridiagonal/ — the Thomas algorithm
//	solveset/    — the singular-system resolver (particular solution +
//	               null-space basis + consistency Info)
//
// Quick example:
//
//	L = ⎡2 0⎤   b = ⎡ 4⎤   ⇒   x = ⎡2.00⎤
//	    ⎣3 4⎦       ⎣11⎦           ⎣1.25⎦
//
// Every operation is a pure, synchronous function over caller-owned,
// fixed-size buffers: no locking, no cancellation, O(n)–O(n³) to completion.
// Callers own the threading discipline; independent calls are safe to run
// concurrently because nothing is shared.
//
//	go get github.com/katalvlaran/trisolve
package trisolve
