// SPDX-License-Identifier: MIT
// Package halfedge: geometric queries over the connectivity.

package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// EdgeLength returns the Euclidean length of e.
func (m *Mesh) EdgeLength(e Edge) float64 {
	h := EdgeHalfedge(e, 0)
	return r3.Norm(r3.Sub(m.points[m.hconn[h].to], m.points[m.From(h)]))
}

// Midpoint returns the midpoint of e.
func (m *Mesh) Midpoint(e Edge) r3.Vec {
	h := EdgeHalfedge(e, 0)
	return r3.Scale(0.5, r3.Add(m.points[m.hconn[h].to], m.points[m.From(h)]))
}

// FaceNormal returns the unit normal of f following its winding, or the zero
// vector for a degenerate triangle.
func (m *Mesh) FaceNormal(f Face) r3.Vec {
	n := m.faceAreaVector(f)
	if l := r3.Norm(n); l > 0 {
		return r3.Scale(1/l, n)
	}

	return r3.Vec{}
}

// FaceArea returns the area of f.
func (m *Mesh) FaceArea(f Face) float64 {
	return 0.5 * r3.Norm(m.faceAreaVector(f))
}

// faceAreaVector is (b-a)×(c-a), twice the area along the normal.
func (m *Mesh) faceAreaVector(f Face) r3.Vec {
	c := m.FaceVertices(f)
	a := m.points[c[0]]

	return r3.Cross(r3.Sub(m.points[c[1]], a), r3.Sub(m.points[c[2]], a))
}

// VertexNormal returns the area-weighted unit normal at v, or the zero vector
// when v has no incident face.
func (m *Mesh) VertexNormal(v Vertex) r3.Vec {
	var n r3.Vec
	for _, h := range m.OutgoingHalfedges(v) {
		if f := m.hconn[h].face; f.IsValid() {
			n = r3.Add(n, m.faceAreaVector(f))
		}
	}
	if l := r3.Norm(n); l > 0 {
		return r3.Scale(1/l, n)
	}

	return r3.Vec{}
}

// Centroid returns the average position of the one-ring of v, or its own
// position when isolated.
func (m *Mesh) Centroid(v Vertex) r3.Vec {
	ring := m.Neighbors(v)
	if len(ring) == 0 {
		return m.points[v]
	}
	var sum r3.Vec
	for _, w := range ring {
		sum = r3.Add(sum, m.points[w])
	}

	return r3.Scale(1/float64(len(ring)), sum)
}
