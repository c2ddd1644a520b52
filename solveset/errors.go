// SPDX-License-Identifier: MIT
// Package solveset: sentinel error set.
// Sentinels cover structural caller-contract violations and result-accessor
// misuse only. Inconsistency ("no exact solution exists") and singularity are
// values reported through Info — normal outcomes, never errors.

package solveset

import "errors"

var (
	// ErrNilBuffer indicates that a nil matrix or RHS slice was passed.
	ErrNilBuffer = errors.New("solveset: nil buffer")

	// ErrInvalidSize indicates a non-positive system size n.
	ErrInvalidSize = errors.New("solveset: size must be > 0")

	// ErrDimensionMismatch indicates that a buffer length disagrees with the
	// declared size (len(matrix) != n*n or len(rhs) != n).
	ErrDimensionMismatch = errors.New("solveset: dimension mismatch")

	// ErrColumnOutOfRange indicates a SolutionSet accessor was asked for a
	// generator column that does not exist (including any access on an
	// inconsistent, and therefore empty, set).
	ErrColumnOutOfRange = errors.New("solveset: generator column out of range")
)
