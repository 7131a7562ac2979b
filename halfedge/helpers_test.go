// SPDX-License-Identifier: MIT
// Package halfedge_test contains shared fixtures.
//
// Purpose:
//   - Small, deterministic meshes with known counts for connectivity tests.

package halfedge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/heatmesh/halfedge"
)

// unitSquare is two triangles sharing the diagonal (0,0)-(1,1).
func unitSquare() ([]r3.Vec, [][3]int) {
	return []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		[][3]int{{0, 1, 2}, {0, 2, 3}}
}

// hexagon is a regular fan of six triangles around vertex 0 with unit edge r.
func hexagon(r float64) ([]r3.Vec, [][3]int) {
	pts := []r3.Vec{{}}
	for k := 0; k < 6; k++ {
		a := float64(k) * math.Pi / 3
		pts = append(pts, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	tris := make([][3]int, 0, 6)
	for k := 0; k < 6; k++ {
		tris = append(tris, [3]int{0, 1 + k, 1 + (k+1)%6})
	}

	return pts, tris
}

// tetrahedron is a closed surface with four faces.
func tetrahedron() ([]r3.Vec, [][3]int) {
	return []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}},
		[][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}}
}

// grid is an n×n quad grid of spacing s, each quad split along the same diagonal.
func grid(n int, s float64) ([]r3.Vec, [][3]int) {
	pts := make([]r3.Vec, 0, (n+1)*(n+1))
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			pts = append(pts, r3.Vec{X: float64(i) * s, Y: float64(j) * s})
		}
	}
	tris := make([][3]int, 0, 2*n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			a := j*(n+1) + i
			b, c, d := a+1, a+n+2, a+n+1
			tris = append(tris, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	return pts, tris
}

// mustMesh ingests pts/tris permissively and fails the test on error or skips.
func mustMesh(t *testing.T, pts []r3.Vec, tris [][3]int) *halfedge.Mesh {
	t.Helper()
	m, rep, err := halfedge.FromTriangles(pts, tris)
	require.NoError(t, err)
	require.Empty(t, rep.Skipped, "fixture triangles must all be accepted")
	require.NoError(t, m.Validate())

	return m
}
