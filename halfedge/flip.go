// SPDX-License-Identifier: MIT
// Package halfedge: edge flip.

package halfedge

// IsFlipOK reports whether e can be flipped without breaking the mesh: e must
// be live, interior, its two apex vertices must differ and must not already
// be connected.
// Complexity: O(valence).
func (m *Mesh) IsFlipOK(e Edge) bool {
	if !m.validEdge(e) || m.IsBoundaryEdge(e) {
		return false
	}
	h0 := EdgeHalfedge(e, 0)
	h1 := EdgeHalfedge(e, 1)
	v0 := m.hconn[m.hconn[h0].next].to
	v1 := m.hconn[m.hconn[h1].next].to
	if v0 == v1 {
		return false
	}

	return !m.FindHalfedge(v0, v1).IsValid()
}

// Flip replaces e by the other diagonal of the quadrilateral formed by its two
// triangles. The edge keeps its handle; both faces keep their handles.
//
// Errors: ErrFlipNotAllowed when IsFlipOK(e) is false.
// Complexity: O(valence) for the check, O(1) for the rewrite.
func (m *Mesh) Flip(e Edge) error {
	if !m.IsFlipOK(e) {
		return ErrFlipNotAllowed
	}

	a0 := EdgeHalfedge(e, 0)
	b0 := EdgeHalfedge(e, 1)

	a1 := m.hconn[a0].next
	a2 := m.hconn[a1].next
	b1 := m.hconn[b0].next
	b2 := m.hconn[b1].next

	va0 := m.hconn[a0].to
	va1 := m.hconn[a1].to
	vb0 := m.hconn[b0].to
	vb1 := m.hconn[b1].to

	fa := m.hconn[a0].face
	fb := m.hconn[b0].face

	m.hconn[a0].to = va1
	m.hconn[b0].to = vb1

	m.setNext(a0, a2)
	m.setNext(a2, b1)
	m.setNext(b1, a0)

	m.setNext(b0, b2)
	m.setNext(b2, a1)
	m.setNext(a1, b0)

	m.hconn[a1].face = fb
	m.hconn[b1].face = fa

	m.fconn[fa] = a0
	m.fconn[fb] = b0

	if m.vconn[va0] == b0 {
		m.vconn[va0] = a1
	}
	if m.vconn[vb0] == a0 {
		m.vconn[vb0] = b1
	}

	return nil
}

// validEdge reports whether e is in range and not deleted.
func (m *Mesh) validEdge(e Edge) bool {
	return e.IsValid() && int(e) < len(m.edeleted) && !m.edeleted[e]
}

// validHalfedge reports whether h is in range and its edge is not deleted.
func (m *Mesh) validHalfedge(h Halfedge) bool {
	return h.IsValid() && int(h) < len(m.hconn) && !m.edeleted[EdgeOf(h)]
}
