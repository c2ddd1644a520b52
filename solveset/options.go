// SPDX-License-Identifier: MIT

// Package solveset: functional configuration for the numeric policy.
// Mirrors the option conventions used across the module: documented Default*
// constants as the single source of truth, WithX constructors that panic on
// nonsensical values (programmer error), and an internal gatherOptions
// resolver. No global state.
package solveset

import "math"

// DefaultTolerance is the threshold below which a diagonal entry is treated
// as exactly zero for free-variable detection, and the bound a free row's
// residual must satisfy for the system to remain consistent. A dispatcher
// choosing between reference/accelerated/parallel backends MUST feed every
// backend the same tolerance so results stay path-independent.
const DefaultTolerance = 1e-14

const panicToleranceInvalid = "solveset: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Unexported fields prevent external mutation; public entry points accept
// `...Option` and resolve them via gatherOptions.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the zero-threshold for free-row detection and the
// residual bound for consistency checks. Panics on NaN, ±Inf or negative
// input (programmer error, same policy as the constructor validations across
// the module). Time O(1).
//
// AI-Hints:
//   - Loosening tol widens the "free" classification; tightening it can turn
//     a previously-consistent system inconsistent. Keep one value per
//     pipeline.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions resolves defaults then applies user setters in order.
// Deterministic: later options win. Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
