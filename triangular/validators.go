// SPDX-License-Identifier: MIT
// Package: triangular
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size/length checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (size → nil → length).
//  - Triangularity itself is a caller convention and is intentionally NOT
//    validated: entries on the wrong side of the diagonal are simply ignored
//    by the kernels.

package triangular

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateMatrix ensures t is a non-nil flat row-major n×n buffer.
//
// Errors: ErrInvalidSize (n ≤ 0), ErrNilBuffer, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMatrix(t []float64, n int) error {
	// Reject non-positive sizes before any length arithmetic.
	if n <= 0 {
		return validatorErrorf("ValidateMatrix", ErrInvalidSize)
	}
	// Disallow nil buffers to avoid subtle zero-length aliasing bugs.
	if t == nil {
		return validatorErrorf("ValidateMatrix", ErrNilBuffer)
	}
	// Exact length contract: flat row-major storage of n*n doubles.
	if len(t) != n*n {
		return validatorErrorf("ValidateMatrix", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVector ensures x is a non-nil buffer of exactly n doubles.
//
// Errors: ErrNilBuffer, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVector(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVector", ErrNilBuffer)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVector", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem – Composite: Matrix(t,n) → Vector(b,n).
//
// Errors: ErrInvalidSize, ErrNilBuffer, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSystem(t, b []float64, n int) error {
	if err := ValidateMatrix(t, n); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVector(b, n); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}

// ValidateMultiple – Composite: Matrix(t,n) → RHS block bs of shape n×m
// (flat row-major, length n*m).
//
// Errors: ErrInvalidSize (n ≤ 0 or m ≤ 0), ErrNilBuffer, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMultiple(t, bs []float64, n, m int) error {
	if err := ValidateMatrix(t, n); err != nil {
		return validatorErrorf("ValidateMultiple", err)
	}
	if m <= 0 {
		return validatorErrorf("ValidateMultiple", ErrInvalidSize)
	}
	if bs == nil {
		return validatorErrorf("ValidateMultiple", ErrNilBuffer)
	}
	if len(bs) != n*m {
		return validatorErrorf("ValidateMultiple", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBandwidth ensures bw is non-negative. Bandwidths ≥ n-1 are legal
// and degenerate to the dense recurrence.
//
// Errors: ErrNegativeBandwidth.
// Complexity: O(1).
func ValidateBandwidth(bw int) error {
	if bw < 0 {
		return validatorErrorf("ValidateBandwidth", ErrNegativeBandwidth)
	}

	return nil
}
