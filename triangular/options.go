// SPDX-License-Identifier: MIT

// Package triangular: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package triangular

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultTolerance is the threshold below which a diagonal entry is treated
// as exactly zero for rank decisions. The substitution kernels themselves use
// strict equality (== 0.0), NOT this tolerance: near-singular systems are
// solved for an ordinary, possibly ill-conditioned, numeric answer.
const DefaultTolerance = 1e-14

// ---------- Internal panic messages (no magic strings) ----------

const panicToleranceInvalid = "triangular: WithTolerance: tol must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the zero-threshold used by Rank.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - Does NOT affect the solve kernels: their zero-pivot branch is exact
//     equality (see package doc).
//
// Inputs:
//   - tol: non-negative finite threshold.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - The default (1e-14) suits float64 data produced by LU-style
//     factorization; loosen only for data with known larger noise floors.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.tol = tol }
}

// gatherOptions resolves defaults then applies user setters in order.
// Deterministic: later options win. Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	// Seed with documented defaults.
	o := Options{tol: DefaultTolerance}
	// Apply user setters in declaration order.
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
