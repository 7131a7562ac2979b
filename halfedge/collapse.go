// SPDX-License-Identifier: MIT
// Package halfedge: halfedge collapse with link-condition check.

package halfedge

// IsCollapseOK reports whether collapsing h (moving From(h) onto To(h)) keeps
// the mesh a manifold triangle mesh.
//
// Rejected when:
//   - either incident triangle has its two other edges on the boundary;
//   - the two apex vertices coincide (or both sides are boundary);
//   - both endpoints are boundary vertices but h is an interior edge;
//   - the one-rings of the endpoints share a vertex other than the apexes;
//   - an interior apex has valence 3 and would be left with two edges.
//
// Complexity: O(valence²).
func (m *Mesh) IsCollapseOK(h Halfedge) bool {
	if !m.validHalfedge(h) {
		return false
	}
	o := Opposite(h)
	v0 := m.hconn[o].to
	v1 := m.hconn[h].to
	vl, vr := InvalidVertex, InvalidVertex

	if !m.IsBoundaryHalfedge(h) {
		h1 := m.hconn[h].next
		h2 := m.hconn[h1].next
		vl = m.hconn[h1].to
		if m.IsBoundaryHalfedge(Opposite(h1)) && m.IsBoundaryHalfedge(Opposite(h2)) {
			return false
		}
	}
	if !m.IsBoundaryHalfedge(o) {
		h1 := m.hconn[o].next
		h2 := m.hconn[h1].next
		vr = m.hconn[h1].to
		if m.IsBoundaryHalfedge(Opposite(h1)) && m.IsBoundaryHalfedge(Opposite(h2)) {
			return false
		}
	}
	if vl == vr {
		return false
	}
	if m.IsBoundaryVertex(v0) && m.IsBoundaryVertex(v1) &&
		!m.IsBoundaryHalfedge(h) && !m.IsBoundaryHalfedge(o) {
		return false
	}
	for _, apex := range [2]Vertex{vl, vr} {
		if apex.IsValid() && !m.IsBoundaryVertex(apex) && m.Valence(apex) <= 3 {
			return false
		}
	}
	for _, vv := range m.Neighbors(v0) {
		if vv != v1 && vv != vl && vv != vr && m.FindHalfedge(vv, v1).IsValid() {
			return false
		}
	}

	return true
}

// Collapse removes From(h) by merging it into To(h). The removed vertex, the
// collapsed edge and the faces that degenerate are tombstoned.
//
// Errors: ErrCollapseNotAllowed when IsCollapseOK(h) is false.
func (m *Mesh) Collapse(h Halfedge) error {
	if !m.IsCollapseOK(h) {
		return ErrCollapseNotAllowed
	}
	h1 := m.hconn[h].prev
	o1 := m.hconn[Opposite(h)].next

	m.removeEdge(h)

	if m.hconn[m.hconn[h1].next].next == h1 {
		m.removeLoop(h1)
	}
	if m.hconn[m.hconn[o1].next].next == o1 {
		m.removeLoop(o1)
	}

	return nil
}

// removeEdge unlinks the edge of h and redirects every halfedge entering From(h)
// to To(h). It may leave two-halfedge loops behind; see removeLoop.
func (m *Mesh) removeEdge(h Halfedge) {
	hn := m.hconn[h].next
	hp := m.hconn[h].prev

	o := Opposite(h)
	on := m.hconn[o].next
	op := m.hconn[o].prev

	fh := m.hconn[h].face
	fo := m.hconn[o].face

	vh := m.hconn[h].to
	vo := m.hconn[o].to

	for _, hc := range m.OutgoingHalfedges(vo) {
		m.hconn[Opposite(hc)].to = vh
	}

	m.setNext(hp, hn)
	m.setNext(op, on)

	if fh.IsValid() {
		m.fconn[fh] = hn
	}
	if fo.IsValid() {
		m.fconn[fo] = on
	}

	if m.vconn[vh] == o {
		m.vconn[vh] = hn
	}
	m.adjustOutgoing(vh)
	m.vconn[vo] = InvalidHalfedge

	m.vdeleted[vo] = true
	m.deletedVertices++
	m.edeleted[EdgeOf(h)] = true
	m.deletedEdges++
}

// removeLoop removes a two-halfedge cycle h → next(h) → h left by removeEdge,
// merging its edge with the edge of next(h) and deleting the degenerate face.
func (m *Mesh) removeLoop(h Halfedge) {
	h0 := h
	h1 := m.hconn[h0].next

	o0 := Opposite(h0)
	o1 := Opposite(h1)

	v0 := m.hconn[h0].to
	v1 := m.hconn[h1].to

	fh := m.hconn[h0].face
	fo := m.hconn[o0].face

	m.setNext(h1, m.hconn[o0].next)
	m.setNext(m.hconn[o0].prev, h1)

	m.hconn[h1].face = fo

	m.vconn[v0] = h1
	m.adjustOutgoing(v0)
	m.vconn[v1] = o1
	m.adjustOutgoing(v1)

	if fo.IsValid() && m.fconn[fo] == o0 {
		m.fconn[fo] = h1
	}

	if fh.IsValid() {
		m.fdeleted[fh] = true
		m.deletedFaces++
	}
	m.edeleted[EdgeOf(h0)] = true
	m.deletedEdges++
}
