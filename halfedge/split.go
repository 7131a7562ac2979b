// SPDX-License-Identifier: MIT
// Package halfedge: edge split.

package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// SplitEdge inserts a new vertex at p on e and connects it to the apex of each
// incident triangle, turning one (boundary) or two (interior) faces into two
// or four. It returns the new vertex.
//
// Implementation:
//   - Stage 1: e keeps its handle and now ends at the new vertex v.
//   - Stage 2: a new edge v→v2 takes over the far half of e.
//   - Stage 3: every non-boundary side gets an extra spoke to its apex and a new face.
//
// Errors: ErrInvalidEdge for a dead or out-of-range edge.
// Complexity: O(1).
func (m *Mesh) SplitEdge(e Edge, p r3.Vec) (Vertex, error) {
	if !m.validEdge(e) {
		return InvalidVertex, ErrInvalidEdge
	}
	v := m.AddVertex(p)

	h0 := EdgeHalfedge(e, 0)
	o0 := EdgeHalfedge(e, 1)
	v2 := m.hconn[o0].to

	e1 := m.newEdge(v, v2)
	t1 := Opposite(e1)

	f0 := m.hconn[h0].face
	f3 := m.hconn[o0].face

	m.vconn[v] = h0
	m.hconn[o0].to = v

	if !m.IsBoundaryHalfedge(h0) {
		h1 := m.hconn[h0].next
		h2 := m.hconn[h1].next
		v1 := m.hconn[h1].to

		e0 := m.newEdge(v, v1)
		t0 := Opposite(e0)

		f1 := m.newFace()
		m.fconn[f0] = h0
		m.fconn[f1] = h2

		m.hconn[h1].face = f0
		m.hconn[t0].face = f0
		m.hconn[h0].face = f0

		m.hconn[h2].face = f1
		m.hconn[t1].face = f1
		m.hconn[e0].face = f1

		m.setNext(h0, h1)
		m.setNext(h1, t0)
		m.setNext(t0, h0)

		m.setNext(e0, h2)
		m.setNext(h2, t1)
		m.setNext(t1, e0)
	} else {
		m.setNext(m.hconn[h0].prev, t1)
		m.setNext(t1, h0)
	}

	if !m.IsBoundaryHalfedge(o0) {
		o1 := m.hconn[o0].next
		o2 := m.hconn[o1].next
		v3 := m.hconn[o1].to

		e2 := m.newEdge(v, v3)
		t2 := Opposite(e2)

		f2 := m.newFace()
		m.fconn[f2] = o1
		m.fconn[f3] = o0

		m.hconn[o1].face = f2
		m.hconn[t2].face = f2
		m.hconn[e1].face = f2

		m.hconn[o2].face = f3
		m.hconn[o0].face = f3
		m.hconn[e2].face = f3

		m.setNext(e1, o1)
		m.setNext(o1, t2)
		m.setNext(t2, e1)

		m.setNext(o0, e2)
		m.setNext(e2, o2)
		m.setNext(o2, o0)
	} else {
		m.setNext(e1, m.hconn[o0].next)
		m.setNext(o0, e1)
		m.vconn[v] = e1
	}

	if m.vconn[v2] == h0 {
		m.vconn[v2] = t1
	}

	return v, nil
}
