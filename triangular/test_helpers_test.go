// SPDX-License-Identifier: MIT
// Package triangular_test contains shared test fixtures and utilities.
//
// Purpose:
//   - Provide small, deterministic fixtures for the substitution kernels.
//   - Keep all data finite and well-conditioned unless a test explicitly
//     exercises the singular/NaN policy.

package triangular_test

import (
	"math"
	"math/rand"
	"testing"
)

// flatten converts a [][]float64 literal into the flat row-major layout the
// kernels consume. Fails the test on ragged input.
func flatten(t *testing.T, rows [][]float64) []float64 {
	t.Helper()
	n := len(rows)
	out := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("ragged row %d: len %d vs %d", i, len(row), len(rows[0]))
		}
		out = append(out, row...)
	}

	return out
}

// randomLower fills a well-conditioned lower-triangular matrix: off-diagonal
// entries in [-1,1), diagonal pushed away from zero so every divide is safe.
// Deterministic for a fixed seed.
func randomLower(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	l := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			l[i*n+j] = 2*rng.Float64() - 1
		}
		l[i*n+i] = 2 + rng.Float64() // diagonal in [2,3): well away from zero
	}

	return l
}

// randomUpper mirrors randomLower for the upper orientation.
func randomUpper(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	u := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			u[i*n+j] = 2*rng.Float64() - 1
		}
		u[i*n+i] = 2 + rng.Float64()
	}

	return u
}

// randomVector fills a length-n vector with deterministic values in [-5,5).
func randomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = 10*rng.Float64() - 5
	}

	return v
}

// bandLower zeroes every entry below the given bandwidth so the matrix
// honestly satisfies the band claim the banded kernels rely on.
func bandLower(l []float64, n, bw int) []float64 {
	out := make([]float64, len(l))
	copy(out, l)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i-bw; j++ {
			out[i*n+j] = 0
		}
	}

	return out
}

// bandUpper zeroes every entry above the given bandwidth.
func bandUpper(u []float64, n, bw int) []float64 {
	out := make([]float64, len(u))
	copy(out, u)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + bw + 1; j < n; j++ {
			out[i*n+j] = 0
		}
	}

	return out
}

// matVec computes t·x for a flat n×n matrix; used for residual checks.
func matVec(t []float64, x []float64, n int) []float64 {
	y := make([]float64, n)
	var i, j int
	var acc float64
	for i = 0; i < n; i++ {
		acc = 0
		for j = 0; j < n; j++ {
			acc += t[i*n+j] * x[j]
		}
		y[i] = acc
	}

	return y
}

// maxResidual returns max_i |(t·x)[i] - b[i]|.
func maxResidual(t, x, b []float64, n int) float64 {
	y := matVec(t, x, n)
	var worst float64
	for i := 0; i < n; i++ {
		if d := math.Abs(y[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst
}

// assertVecInDelta compares two vectors elementwise within delta.
func assertVecInDelta(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > delta {
			t.Fatalf("element %d: want %g, got %g (delta %g)", i, want[i], got[i], delta)
		}
	}
}
