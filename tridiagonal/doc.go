// Package tridiagonal solves tridiagonal linear systems with the Thomas
// algorithm — a fully specialized O(n) elimination.
//
// 🚀 What is the Thomas algorithm?
//
//	For a system whose matrix has non-zeros only on the sub-, main- and
//	super-diagonal, Gaussian elimination collapses to a single forward sweep
//	(normalizing each row against the one above) followed by a single back
//	substitution. Linear time, linear memory, no fill-in.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trisolve/tridiagonal"
//
//	// All four slices share length n; sub[0] and super[n-1] are ignored.
//	x, err := tridiagonal.Solve(sub, diag, super, rhs)
//
// ⚠️ Numeric policy:
//
//	There is NO singularity guard: a zero forward-sweep denominator yields
//	±Inf/NaN that propagate through the remaining sweep. This is a known,
//	documented trade-off for speed — the Thomas algorithm is only stable for
//	diagonally dominant or symmetric positive-definite systems anyway, and
//	callers wanting detection should run the dense solver from the sibling
//	triangular package instead.
//
// Performance: O(n) time, O(n) extra space. The input slices are never
// mutated (work buffers are fresh), so independent calls are safe to run
// concurrently.
package tridiagonal
