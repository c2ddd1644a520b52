// SPDX-License-Identifier: MIT
// Package triangular: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// triangular package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package triangular

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "triangular: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still use
// errors.Is to match.
//
// Numeric singularity is NOT an error in this package: an exactly-zero
// diagonal entry is signaled by NaN in the output (see SolveLower), never by
// a sentinel. Sentinels cover structural caller-contract violations only.

var (
	// ErrNilBuffer indicates that a nil slice (matrix, vector, or RHS block)
	// was passed where a backing buffer is required.
	ErrNilBuffer = errors.New("triangular: nil buffer")

	// ErrInvalidSize indicates a non-positive system size n (or RHS count m).
	ErrInvalidSize = errors.New("triangular: size must be > 0")

	// ErrDimensionMismatch indicates that a buffer length disagrees with the
	// declared dimensions (len(matrix) != n*n, len(vector) != n, etc.).
	ErrDimensionMismatch = errors.New("triangular: dimension mismatch")

	// ErrNegativeBandwidth indicates a bandwidth below zero in a banded solve.
	ErrNegativeBandwidth = errors.New("triangular: bandwidth must be >= 0")
)
