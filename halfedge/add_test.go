// SPDX-License-Identifier: MIT
package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/heatmesh/halfedge"
)

// TestAddTriangle_Single checks counts and the boundary cycle of one face.
func TestAddTriangle_Single(t *testing.T) {
	m := halfedge.New()
	a := m.AddVertex(r3.Vec{X: 0})
	b := m.AddVertex(r3.Vec{X: 1})
	c := m.AddVertex(r3.Vec{Y: 1})

	f, err := m.AddTriangle(a, b, c)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 3, m.NumEdges())
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, [3]halfedge.Vertex{a, b, c}, m.FaceVertices(f))
	for _, v := range []halfedge.Vertex{a, b, c} {
		assert.True(t, m.IsBoundaryVertex(v))
		assert.Equal(t, 2, m.Valence(v))
	}
	for _, e := range m.Edges() {
		assert.True(t, m.IsBoundaryEdge(e))
	}
}

// TestAddTriangle_Rejections verifies every topology sentinel and that a
// rejected insertion leaves the mesh untouched.
func TestAddTriangle_Rejections(t *testing.T) {
	pts, tris := unitSquare()
	m := mustMesh(t, pts, tris)
	edges, faces := m.NumEdges(), m.NumFaces()

	_, err := m.AddTriangle(0, 1, 1)
	assert.ErrorIs(t, err, halfedge.ErrDegenerateFace)

	_, err = m.AddTriangle(0, 1, 9)
	assert.ErrorIs(t, err, halfedge.ErrInvalidVertex)

	_, err = m.AddTriangle(0, 1, 2)
	assert.ErrorIs(t, err, halfedge.ErrDuplicateFace, "same winding")

	_, err = m.AddTriangle(0, 2, 1)
	assert.ErrorIs(t, err, halfedge.ErrDuplicateFace, "opposite winding")

	// 0→2 already borders face (0,2,3) on this side.
	e := m.AddVertex(r3.Vec{X: 2, Y: 2})
	_, err = m.AddTriangle(0, 2, e)
	assert.ErrorIs(t, err, halfedge.ErrComplexEdge)

	for _, err := range []error{
		halfedge.ErrDegenerateFace, halfedge.ErrInvalidVertex,
		halfedge.ErrDuplicateFace, halfedge.ErrComplexEdge,
	} {
		assert.ErrorIs(t, err, halfedge.ErrTopology)
	}
	assert.Equal(t, edges, m.NumEdges())
	assert.Equal(t, faces, m.NumFaces())
	require.NoError(t, m.Validate())
}

// TestAddTriangle_ComplexVertex rejects a face at a vertex whose fan is closed.
func TestAddTriangle_ComplexVertex(t *testing.T) {
	pts, tris := hexagon(1)
	m := mustMesh(t, pts, tris)
	require.False(t, m.IsBoundaryVertex(0))

	x := m.AddVertex(r3.Vec{X: 5})
	y := m.AddVertex(r3.Vec{X: 6})
	_, err := m.AddTriangle(0, x, y)
	assert.ErrorIs(t, err, halfedge.ErrComplexVertex)
}

// TestAddTriangle_PatchRelink inserts fan triangles out of order so the last
// insertion has to merge two separate boundary fans.
func TestAddTriangle_PatchRelink(t *testing.T) {
	pts, tris := hexagon(1)
	m := halfedge.New()
	for _, p := range pts {
		m.AddVertex(p)
	}
	for _, k := range []int{0, 2, 4, 1, 3, 5} {
		tr := tris[k]
		_, err := m.AddTriangle(halfedge.Vertex(tr[0]), halfedge.Vertex(tr[1]), halfedge.Vertex(tr[2]))
		require.NoError(t, err, "triangle %d", k)
		require.NoError(t, m.Validate(), "after triangle %d", k)
	}

	assert.Equal(t, 6, m.NumFaces())
	assert.Equal(t, 12, m.NumEdges())
	assert.False(t, m.IsBoundaryVertex(0))
	assert.Equal(t, 6, m.Valence(0))
}

// TestTopology_Queries exercises circulators and lookups on a closed mesh.
func TestTopology_Queries(t *testing.T) {
	pts, tris := tetrahedron()
	m := mustMesh(t, pts, tris)

	assert.Equal(t, 6, m.NumEdges())
	for _, v := range m.Vertices() {
		assert.False(t, m.IsBoundaryVertex(v))
		assert.Equal(t, 3, m.Valence(v))
		assert.ElementsMatch(t, others(v, 4), m.Neighbors(v))
	}
	h := m.FindHalfedge(1, 3)
	require.True(t, h.IsValid())
	assert.Equal(t, halfedge.Vertex(1), m.From(h))
	assert.Equal(t, halfedge.Vertex(3), m.To(h))
	assert.Equal(t, halfedge.EdgeOf(h), m.FindEdge(3, 1))
	assert.Equal(t, h, halfedge.Opposite(halfedge.Opposite(h)))
	assert.Equal(t, m.Prev(m.Next(h)), h)
	for _, f := range m.Faces() {
		assert.Equal(t, 3, m.FaceDegree(f))
	}
}

// others lists every vertex in [0,n) except v.
func others(v halfedge.Vertex, n int) []halfedge.Vertex {
	out := make([]halfedge.Vertex, 0, n-1)
	for i := 0; i < n; i++ {
		if halfedge.Vertex(i) != v {
			out = append(out, halfedge.Vertex(i))
		}
	}

	return out
}
