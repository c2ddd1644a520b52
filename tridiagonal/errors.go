// SPDX-License-Identifier: MIT
// Package tridiagonal: sentinel error set.
// Structural caller-contract violations only; numeric breakdown (a zero
// forward-sweep denominator) is signaled by ±Inf/NaN in the output, never by
// a sentinel. Check via errors.Is.

package tridiagonal

import "errors"

var (
	// ErrNilBuffer indicates that one of the diagonal or RHS slices is nil.
	ErrNilBuffer = errors.New("tridiagonal: nil buffer")

	// ErrEmptySystem indicates a zero-length main diagonal (n == 0).
	ErrEmptySystem = errors.New("tridiagonal: empty system")

	// ErrDimensionMismatch indicates that the sub-, super-diagonal or RHS
	// length disagrees with the main diagonal length.
	ErrDimensionMismatch = errors.New("tridiagonal: dimension mismatch")
)
