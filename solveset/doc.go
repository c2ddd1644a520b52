// Package solveset fully characterizes the solution set of a possibly
// singular triangular system: inconsistent, unique, or an affine family
// described by a particular solution plus a null-space basis.
//
// 🚀 Why a separate resolver?
//
//	The substitution kernels in the sibling triangular package treat a zero
//	diagonal as a local NaN signal and move on. This package generalizes the
//	same recurrence: instead of failing on a zero pivot it detects the free
//	variables, verifies consistency of their rows, and constructs one
//	null-space basis vector per free variable — deterministically, so a
//	dispatcher may route identical inputs to any backend and get identical
//	output.
//
// ✨ The solution-set model:
//   - Inconsistent   → Info{Solutions: 0, FreeVars: 0, Consistent: false},
//     empty generator matrix.
//   - Unique         → Info{1, 0, true}, one column (the solution itself).
//   - Affine family  → Info{1+k, k, true}, an n×(1+k) column block: column 0
//     is a particular solution, the remaining k columns z_1..z_k each solve
//     the homogeneous system. Every true solution equals
//     particular + Σ c_m·z_m for arbitrary real c_m.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trisolve/solveset"
//
//	set, err := solveset.SolveLowerAll(l, b, n)
//	if err != nil { ... }                  // structural misuse only
//	if !set.Info.Consistent { ... }        // no exact solution exists
//	p, _ := set.Particular()               // column 0
//	z, _ := set.Basis(0)                   // first null-space generator
//
// 🔬 Numeric policy:
//
//	Row i is free iff |T[i,i]| < tol (strict, DefaultTolerance = 1e-14,
//	injectable via WithTolerance). A free row's residual must satisfy
//	|residual| ≤ tol or the whole system is inconsistent. Inconsistency is a
//	normal outcome reported through Info, never an error: the resolver never
//	silently approximates (no least-squares fallback) — it prefers an explicit
//	"no exact solution" over a plausible-looking wrong answer.
//
// Known limitation: when several free rows interact (a free row carrying
// non-zero off-diagonal entries in another free row's column), the
// deterministic basis rule can emit a column that does not annihilate the
// matrix; see the SolveLowerAll documentation.
//
// Performance: O((1+k)·n²) time, O(n·(1+k)) space. Pure functions over
// caller-owned buffers; independent calls are safe to run concurrently.
package solveset
