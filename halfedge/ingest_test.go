// SPDX-License-Identifier: MIT
package halfedge_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/heatmesh/halfedge"
)

// badInput mixes valid triangles with every kind of rejected one.
func badInput() ([]r3.Vec, [][3]int) {
	pts, tris := unitSquare()
	pts = append(pts, r3.Vec{X: 2, Y: 2})
	tris = append(tris,
		[3]int{0, 1, 2},  // duplicate
		[3]int{1, 1, 3},  // degenerate
		[3]int{0, 1, 17}, // out of range
		[3]int{0, 2, 4},  // third face on edge 0-2
		[3]int{1, 4, 2},  // valid
	)

	return pts, tris
}

// TestIngest_Permissive skips offending triangles and keeps going.
func TestIngest_Permissive(t *testing.T) {
	pts, tris := badInput()
	m, rep, err := halfedge.FromTriangles(pts, tris)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 5, rep.Vertices)
	assert.Equal(t, 3, rep.Triangles)
	require.Len(t, rep.Skipped, 4)
	assert.Equal(t, []int{2, 3, 4, 5}, []int{
		rep.Skipped[0].Index, rep.Skipped[1].Index, rep.Skipped[2].Index, rep.Skipped[3].Index,
	})
	assert.ErrorIs(t, rep.Skipped[0], halfedge.ErrDuplicateFace)
	assert.ErrorIs(t, rep.Skipped[1], halfedge.ErrDegenerateFace)
	assert.ErrorIs(t, rep.Skipped[2], halfedge.ErrInvalidVertex)
	assert.ErrorIs(t, rep.Skipped[3], halfedge.ErrComplexEdge)
	assert.Equal(t, m.NumFaces(), rep.Triangles)
	assert.Equal(t, 5, m.NumVertices(), "vertices are never deduplicated or dropped")
}

// TestIngest_Strict aborts on the first offending triangle.
func TestIngest_Strict(t *testing.T) {
	pts, tris := badInput()
	m, rep, err := halfedge.FromTriangles(pts, tris, halfedge.WithStrict(true))
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Equal(t, 2, rep.Triangles)

	var te *halfedge.TriangleError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 2, te.Index)
	assert.Equal(t, [3]int{0, 1, 2}, te.Corners)
	assert.ErrorIs(t, err, halfedge.ErrTopology)
}

// TestIngest_ReplacesContents clears previous state on every call.
func TestIngest_ReplacesContents(t *testing.T) {
	pts, tris := hexagon(1)
	m := mustMesh(t, pts, tris)

	sp, st := unitSquare()
	_, err := m.Ingest(sp, st)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 5, m.NumEdges())
	assert.False(t, m.HasGarbage())
}
