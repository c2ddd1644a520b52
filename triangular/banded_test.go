// SPDX-License-Identifier: MIT
// Package triangular_test: unit tests for the bandwidth-restricted kernels.

package triangular_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisolve/triangular"
)

// TestSolveLowerBanded_MatchesDense: for a matrix that honestly satisfies the
// bandwidth claim, the banded and dense kernels sum the same non-zero terms
// in the same order, so the results must be bit-identical.
func TestSolveLowerBanded_MatchesDense(t *testing.T) {
	t.Parallel()

	const n = 30
	for _, bw := range []int{0, 1, 3, 7} {
		l := bandLower(randomLower(n, 21), n, bw)
		b := randomVector(n, 22)

		dense, err := triangular.SolveLower(l, b, n)
		require.NoError(t, err)
		banded, err := triangular.SolveLowerBanded(l, b, n, bw)
		require.NoError(t, err)
		require.Equal(t, dense, banded, "bandwidth %d", bw)
	}
}

func TestSolveUpperBanded_MatchesDense(t *testing.T) {
	t.Parallel()

	const n = 30
	for _, bw := range []int{0, 2, 5} {
		u := bandUpper(randomUpper(n, 23), n, bw)
		b := randomVector(n, 24)

		dense, err := triangular.SolveUpper(u, b, n)
		require.NoError(t, err)
		banded, err := triangular.SolveUpperBanded(u, b, n, bw)
		require.NoError(t, err)
		require.Equal(t, dense, banded, "bandwidth %d", bw)
	}
}

// TestSolveLowerBanded_WideBandDegeneratesToDense: bw ≥ n-1 means the window
// never clips, so even a fully dense lower triangle is handled identically.
func TestSolveLowerBanded_WideBandDegeneratesToDense(t *testing.T) {
	t.Parallel()

	const n = 15
	l := randomLower(n, 25)
	b := randomVector(n, 26)

	dense, err := triangular.SolveLower(l, b, n)
	require.NoError(t, err)
	banded, err := triangular.SolveLowerBanded(l, b, n, n-1)
	require.NoError(t, err)
	require.Equal(t, dense, banded)

	// Oversized bandwidth is legal too.
	wide, err := triangular.SolveLowerBanded(l, b, n, 10*n)
	require.NoError(t, err)
	require.Equal(t, dense, wide)
}

// TestSolveLowerBanded_ZeroPivotSignalsNaN: the NaN policy is shared with the
// dense kernel.
func TestSolveLowerBanded_ZeroPivotSignalsNaN(t *testing.T) {
	t.Parallel()

	l := flatten(t, [][]float64{
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 2},
	})
	x, err := triangular.SolveLowerBanded(l, []float64{1, 1, 1}, 3, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, x[0])
	require.True(t, math.IsNaN(x[1]))
	require.True(t, math.IsNaN(x[2]))
}

func TestSolveBanded_StructuralValidation(t *testing.T) {
	t.Parallel()

	l := flatten(t, [][]float64{{1, 0}, {1, 1}})
	b := []float64{1, 1}

	var err error
	_, err = triangular.SolveLowerBanded(l, b, 2, -1)
	require.ErrorIs(t, err, triangular.ErrNegativeBandwidth)

	_, err = triangular.SolveUpperBanded(l, b, 2, -7)
	require.ErrorIs(t, err, triangular.ErrNegativeBandwidth)

	_, err = triangular.SolveLowerBanded(nil, b, 2, 1)
	require.ErrorIs(t, err, triangular.ErrNilBuffer)

	_, err = triangular.SolveUpperBanded(l, b, 5, 1)
	require.ErrorIs(t, err, triangular.ErrDimensionMismatch)
}
