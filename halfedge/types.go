// SPDX-License-Identifier: MIT
// Package halfedge: handle types and the Mesh arena.
//
// This file declares the integer handles (Vertex, Halfedge, Edge, Face), the
// connectivity tables backing a Mesh, its constructor and size queries.

package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// Vertex is a handle to a mesh vertex. Negative values are invalid.
type Vertex int

// Halfedge is a handle to a directed halfedge. Halfedges 2e and 2e+1 belong to edge e.
type Halfedge int

// Edge is a handle to an undirected edge.
type Edge int

// Face is a handle to a triangle.
type Face int

// Invalid handles.
const (
	InvalidVertex   Vertex   = -1
	InvalidHalfedge Halfedge = -1
	InvalidEdge     Edge     = -1
	InvalidFace     Face     = -1
)

// IsValid reports whether v is a non-negative handle.
func (v Vertex) IsValid() bool { return v >= 0 }

// IsValid reports whether h is a non-negative handle.
func (h Halfedge) IsValid() bool { return h >= 0 }

// IsValid reports whether e is a non-negative handle.
func (e Edge) IsValid() bool { return e >= 0 }

// IsValid reports whether f is a non-negative handle.
func (f Face) IsValid() bool { return f >= 0 }

// halfedgeConn is the per-halfedge connectivity record.
type halfedgeConn struct {
	to   Vertex   // target vertex
	next Halfedge // next halfedge in the face (or boundary) cycle
	prev Halfedge // previous halfedge in the cycle
	face Face     // incident face, InvalidFace on the boundary
}

// Mesh is an arena-indexed half-edge triangle mesh.
//
// vconn[v] is an outgoing halfedge of v; for boundary vertices it is always a
// boundary halfedge. fconn[f] is one halfedge of f. Tombstones mark deleted
// elements until GarbageCollection runs.
type Mesh struct {
	points []r3.Vec
	vconn  []Halfedge
	hconn  []halfedgeConn
	fconn  []Halfedge

	vdeleted []bool
	edeleted []bool
	fdeleted []bool

	deletedVertices int
	deletedEdges    int
	deletedFaces    int
}

// New returns an empty mesh.
// Complexity: O(1).
func New() *Mesh {
	return &Mesh{}
}

// Clear drops every element, keeping allocated capacity.
func (m *Mesh) Clear() {
	m.points = m.points[:0]
	m.vconn = m.vconn[:0]
	m.hconn = m.hconn[:0]
	m.fconn = m.fconn[:0]
	m.vdeleted = m.vdeleted[:0]
	m.edeleted = m.edeleted[:0]
	m.fdeleted = m.fdeleted[:0]
	m.deletedVertices, m.deletedEdges, m.deletedFaces = 0, 0, 0
}

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int { return len(m.points) - m.deletedVertices }

// NumEdges returns the number of live edges.
func (m *Mesh) NumEdges() int { return len(m.hconn)/2 - m.deletedEdges }

// NumHalfedges returns the number of live halfedges.
func (m *Mesh) NumHalfedges() int { return 2 * m.NumEdges() }

// NumFaces returns the number of live faces.
func (m *Mesh) NumFaces() int { return len(m.fconn) - m.deletedFaces }

// VerticesSize returns the size of the vertex table, tombstones included.
// Valid vertex handles are in [0, VerticesSize()).
func (m *Mesh) VerticesSize() int { return len(m.points) }

// EdgesSize returns the size of the edge table, tombstones included.
func (m *Mesh) EdgesSize() int { return len(m.hconn) / 2 }

// HalfedgesSize returns the size of the halfedge table, tombstones included.
func (m *Mesh) HalfedgesSize() int { return len(m.hconn) }

// FacesSize returns the size of the face table, tombstones included.
func (m *Mesh) FacesSize() int { return len(m.fconn) }

// HasGarbage reports whether any element is tombstoned.
func (m *Mesh) HasGarbage() bool {
	return m.deletedVertices > 0 || m.deletedEdges > 0 || m.deletedFaces > 0
}

// IsVertexDeleted reports whether v is tombstoned.
func (m *Mesh) IsVertexDeleted(v Vertex) bool { return m.vdeleted[v] }

// IsEdgeDeleted reports whether e is tombstoned.
func (m *Mesh) IsEdgeDeleted(e Edge) bool { return m.edeleted[e] }

// IsFaceDeleted reports whether f is tombstoned.
func (m *Mesh) IsFaceDeleted(f Face) bool { return m.fdeleted[f] }

// Vertices returns the live vertex handles in table order.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, 0, m.NumVertices())
	for i := range m.points {
		if !m.vdeleted[i] {
			out = append(out, Vertex(i))
		}
	}

	return out
}

// Edges returns the live edge handles in table order.
func (m *Mesh) Edges() []Edge {
	out := make([]Edge, 0, m.NumEdges())
	for i := range m.edeleted {
		if !m.edeleted[i] {
			out = append(out, Edge(i))
		}
	}

	return out
}

// Faces returns the live face handles in table order.
func (m *Mesh) Faces() []Face {
	out := make([]Face, 0, m.NumFaces())
	for i := range m.fconn {
		if !m.fdeleted[i] {
			out = append(out, Face(i))
		}
	}

	return out
}

// Position returns the position of v.
func (m *Mesh) Position(v Vertex) r3.Vec { return m.points[v] }

// SetPosition moves v to p.
func (m *Mesh) SetPosition(v Vertex, p r3.Vec) { m.points[v] = p }

// AddVertex appends a vertex at p and returns its handle. Positions are stored
// verbatim; coincident points are not merged.
// Complexity: amortized O(1).
func (m *Mesh) AddVertex(p r3.Vec) Vertex {
	m.points = append(m.points, p)
	m.vconn = append(m.vconn, InvalidHalfedge)
	m.vdeleted = append(m.vdeleted, false)

	return Vertex(len(m.points) - 1)
}

// newEdge appends an edge from start to end and returns the halfedge start→end.
// Its opposite is the returned handle + 1. Next/prev/face are left invalid.
func (m *Mesh) newEdge(start, end Vertex) Halfedge {
	m.hconn = append(m.hconn,
		halfedgeConn{to: end, next: InvalidHalfedge, prev: InvalidHalfedge, face: InvalidFace},
		halfedgeConn{to: start, next: InvalidHalfedge, prev: InvalidHalfedge, face: InvalidFace},
	)
	m.edeleted = append(m.edeleted, false)

	return Halfedge(len(m.hconn) - 2)
}

// newFace appends a face record and returns its handle.
func (m *Mesh) newFace() Face {
	m.fconn = append(m.fconn, InvalidHalfedge)
	m.fdeleted = append(m.fdeleted, false)

	return Face(len(m.fconn) - 1)
}
