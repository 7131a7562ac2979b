// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math/rand"

	"github.com/katalvlaran/heatmesh/sparse"
)

// pathLaplacian returns the lower triangle of L + shift·I for the path graph
// on n vertices: tridiagonal with 2+shift (1+shift at the ends) and -1.
func pathLaplacian(n int, shift float64) []sparse.Triplet {
	ts := make([]sparse.Triplet, 0, 2*n)
	for i := 0; i < n; i++ {
		deg := 2.0
		if i == 0 || i == n-1 {
			deg = 1
		}
		ts = append(ts, sparse.Triplet{Row: i, Col: i, Value: deg + shift})
		if i > 0 {
			ts = append(ts, sparse.Triplet{Row: i, Col: i - 1, Value: -1})
		}
	}

	return ts
}

// arrow returns the lower triangle of an SPD matrix whose first row and column
// are dense: natural ordering fills L completely.
func arrow(n int) []sparse.Triplet {
	ts := []sparse.Triplet{{Row: 0, Col: 0, Value: float64(n)}}
	for i := 1; i < n; i++ {
		ts = append(ts,
			sparse.Triplet{Row: i, Col: i, Value: float64(n)},
			sparse.Triplet{Row: i, Col: 0, Value: 1},
		)
	}

	return ts
}

func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}
