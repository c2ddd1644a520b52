// SPDX-License-Identifier: MIT
// Package triangular_test: cross-checks against gonum as an independent
// reference implementation. The kernels must agree with a general-purpose
// dense solver on every non-singular system, regardless of conditioning
// differences in the elimination order.

package triangular_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trisolve/triangular"
)

// gonumSolve solves t·x = b with gonum's dense LU solver.
func gonumSolve(t *testing.T, a, b []float64, n int) []float64 {
	t.Helper()
	A := mat.NewDense(n, n, append([]float64(nil), a...))
	bv := mat.NewVecDense(n, append([]float64(nil), b...))
	var x mat.VecDense
	require.NoError(t, x.SolveVec(A, bv))

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}

	return out
}

func TestSolveLower_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	const n = 40
	l := randomLower(n, 51)
	b := randomVector(n, 52)

	x, err := triangular.SolveLower(l, b, n)
	require.NoError(t, err)
	assertVecInDelta(t, gonumSolve(t, l, b, n), x, 1e-9)
}

func TestSolveUpper_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	const n = 40
	u := randomUpper(n, 53)
	b := randomVector(n, 54)

	x, err := triangular.SolveUpper(u, b, n)
	require.NoError(t, err)
	assertVecInDelta(t, gonumSolve(t, u, b, n), x, 1e-9)
}

func TestInverseLower_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	const n = 15
	l := randomLower(n, 55)
	inv, err := triangular.InverseLower(l, n)
	require.NoError(t, err)

	var ref mat.Dense
	require.NoError(t, ref.Inverse(mat.NewDense(n, n, append([]float64(nil), l...))))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.Abs(ref.At(i, j)-inv[i*n+j]) > 1e-8 {
				t.Fatalf("inverse entry [%d,%d]: gonum %g vs ours %g", i, j, ref.At(i, j), inv[i*n+j])
			}
		}
	}
}
