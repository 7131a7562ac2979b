// SPDX-License-Identifier: MIT
package sparse_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/heatmesh/sparse"
)

func TestNewMatrix_Shape(t *testing.T) {
	for _, sh := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := sparse.NewMatrix(sh[0], sh[1])
		assert.ErrorIs(t, err, sparse.ErrShape)
		assert.ErrorIs(t, err, sparse.ErrInvalidInput)
	}
	m, err := sparse.NewMatrix(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

func TestMatrix_Add(t *testing.T) {
	m, err := sparse.NewMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Add(1, 0, 3))
	require.NoError(t, m.Add(1, 0, 4))
	assert.ErrorIs(t, m.Add(2, 0, 1), sparse.ErrIndexOutOfRange)
	assert.ErrorIs(t, m.Add(0, -1, 1), sparse.ErrIndexOutOfRange)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []sparse.Triplet{{Row: 1, Col: 0, Value: 3}, {Row: 1, Col: 0, Value: 4}}, m.Triplets())
}

func TestFromTriplets_OutOfRange(t *testing.T) {
	_, err := sparse.FromTriplets(2, 2, []sparse.Triplet{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 2, Value: 1}})
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
	_, err = sparse.FromTriplets(0, 0, nil)
	require.ErrorIs(t, err, sparse.ErrShape)
}

func TestFactorize_Scalar(t *testing.T) {
	x, err := sparse.SolveSPD(1, 1, []sparse.Triplet{{Row: 0, Col: 0, Value: 2}}, []float64{4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2}, x, 1e-12)
}

// TestFactorize_DuplicatesAndUpper sums duplicates and ignores the upper triangle.
func TestFactorize_DuplicatesAndUpper(t *testing.T) {
	ts := []sparse.Triplet{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 2},
		{Row: 1, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 100}, // ignored
	}
	x, err := sparse.SolveSPD(2, 2, ts, []float64{3, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, x, 1e-12)
}

func TestFactorize_NotPositiveDefinite(t *testing.T) {
	cases := map[string][]sparse.Triplet{
		"empty":      nil,
		"indefinite": {{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 0, Value: 2}},
		"negative":   {{Row: 0, Col: 0, Value: -1}, {Row: 1, Col: 1, Value: 1}},
		"nan":        {{Row: 0, Col: 0, Value: math.NaN()}, {Row: 1, Col: 1, Value: 1}},
	}
	for name, ts := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := sparse.FromTriplets(2, 2, ts)
			require.NoError(t, err)
			for _, b := range []sparse.Backend{sparse.SimplicialBackend, sparse.DenseBackend} {
				_, err = sparse.Factorize(m, sparse.WithBackend(b))
				assert.ErrorIs(t, err, sparse.ErrNotPositiveDefinite, "backend %s", b)
				assert.ErrorIs(t, err, sparse.ErrNumerical)
			}
		})
	}
}

func TestFactorize_Errors(t *testing.T) {
	_, err := sparse.Factorize(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	m, err := sparse.NewMatrix(2, 3)
	require.NoError(t, err)
	_, err = sparse.Factorize(m)
	require.ErrorIs(t, err, sparse.ErrShape)

	assert.Panics(t, func() { sparse.WithBackend(sparse.Backend(9)) })
}

func TestSolve_Failures(t *testing.T) {
	m, err := sparse.FromTriplets(1, 1, []sparse.Triplet{{Row: 0, Col: 0, Value: 1e-300}})
	require.NoError(t, err)
	c, err := sparse.Factorize(m)
	require.NoError(t, err)

	_, err = c.Solve([]float64{1e300})
	require.ErrorIs(t, err, sparse.ErrSolveFailed)
	_, err = c.Solve([]float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrRHSLength)

	var nilc *sparse.Cholesky
	_, err = nilc.Solve([]float64{1})
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestFactor_Fill checks the symbolic phase: no fill on a path, full fill on an arrow.
func TestFactor_Fill(t *testing.T) {
	const n = 12

	m, err := sparse.FromTriplets(n, n, pathLaplacian(n, 0.5))
	require.NoError(t, err)
	c, err := sparse.Factorize(m)
	require.NoError(t, err)
	assert.Equal(t, 2*n-1, c.FactorNNZ())
	assert.Equal(t, n, c.Size())
	assert.Equal(t, sparse.SimplicialBackend, c.Backend())

	m, err = sparse.FromTriplets(n, n, arrow(n))
	require.NoError(t, err)
	c, err = sparse.Factorize(m)
	require.NoError(t, err)
	assert.Equal(t, n*(n+1)/2, c.FactorNNZ())
}

// TestFactor_MatchesDense cross-checks against gonum's dense Cholesky.
func TestFactor_MatchesDense(t *testing.T) {
	for _, tc := range []struct {
		name string
		n    int
		ts   []sparse.Triplet
	}{
		{"path", 50, pathLaplacian(50, 0.1)},
		{"arrow", 20, arrow(20)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := randomVec(tc.n, 11)

			sym := mat.NewSymDense(tc.n, nil)
			for _, tr := range tc.ts {
				sym.SetSym(tr.Row, tr.Col, sym.At(tr.Row, tr.Col)+tr.Value)
			}
			var ch mat.Cholesky
			require.True(t, ch.Factorize(sym))
			var want mat.VecDense
			require.NoError(t, ch.SolveVecTo(&want, mat.NewVecDense(tc.n, b)))

			m, err := sparse.FromTriplets(tc.n, tc.n, tc.ts)
			require.NoError(t, err)
			for _, backend := range []sparse.Backend{sparse.SimplicialBackend, sparse.DenseBackend} {
				c, err := sparse.Factorize(m, sparse.WithBackend(backend))
				require.NoError(t, err)
				got, err := c.Solve(b)
				require.NoError(t, err)
				assert.InDeltaSlice(t, want.RawVector().Data, got, 1e-9, "backend %s", backend)

				var r mat.VecDense
				r.MulVec(sym, mat.NewVecDense(tc.n, got))
				r.SubVec(&r, mat.NewVecDense(tc.n, b))
				assert.Less(t, mat.Norm(&r, 2), 1e-9, "residual, backend %s", backend)
			}
		})
	}
}

func TestSolveMany(t *testing.T) {
	const n = 30
	m, err := sparse.FromTriplets(n, n, pathLaplacian(n, 1))
	require.NoError(t, err)
	c, err := sparse.Factorize(m)
	require.NoError(t, err)

	rhs := make([][]float64, 8)
	for i := range rhs {
		rhs[i] = randomVec(n, int64(i))
	}
	out, err := c.SolveMany(context.Background(), rhs, 3)
	require.NoError(t, err)
	require.Len(t, out, len(rhs))
	for i, b := range rhs {
		want, err := c.Solve(b)
		require.NoError(t, err)
		assert.Equal(t, want, out[i], "rhs %d", i)
	}

	bad := append(rhs[:2:2], []float64{1})
	_, err = c.SolveMany(context.Background(), bad, 0)
	require.ErrorIs(t, err, sparse.ErrRHSLength)
	assert.Contains(t, err.Error(), "rhs 2")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.SolveMany(ctx, rhs, 2)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
