// SPDX-License-Identifier: MIT
// Package halfedge: O(1) connectivity accessors and one-ring circulators.

package halfedge

// To returns the target vertex of h.
func (m *Mesh) To(h Halfedge) Vertex { return m.hconn[h].to }

// From returns the origin vertex of h.
func (m *Mesh) From(h Halfedge) Vertex { return m.hconn[Opposite(h)].to }

// Next returns the halfedge following h in its cycle.
func (m *Mesh) Next(h Halfedge) Halfedge { return m.hconn[h].next }

// Prev returns the halfedge preceding h in its cycle.
func (m *Mesh) Prev(h Halfedge) Halfedge { return m.hconn[h].prev }

// FaceOf returns the face incident to h, or InvalidFace on the boundary.
func (m *Mesh) FaceOf(h Halfedge) Face { return m.hconn[h].face }

// Outgoing returns the stored outgoing halfedge of v (InvalidHalfedge if isolated).
func (m *Mesh) Outgoing(v Vertex) Halfedge { return m.vconn[v] }

// FaceHalfedge returns the stored halfedge of f.
func (m *Mesh) FaceHalfedge(f Face) Halfedge { return m.fconn[f] }

// Opposite returns the twin of h.
func Opposite(h Halfedge) Halfedge { return h ^ 1 }

// EdgeOf returns the edge owning h.
func EdgeOf(h Halfedge) Edge { return Edge(h >> 1) }

// EdgeHalfedge returns halfedge i (0 or 1) of e.
func EdgeHalfedge(e Edge, i int) Halfedge { return Halfedge(int(e)<<1 + i) }

// setNext links a→b in both directions.
func (m *Mesh) setNext(a, b Halfedge) {
	m.hconn[a].next = b
	m.hconn[b].prev = a
}

// cwRotated returns the next outgoing halfedge of From(h), turning clockwise.
func (m *Mesh) cwRotated(h Halfedge) Halfedge { return m.hconn[Opposite(h)].next }

// IsBoundaryHalfedge reports whether h has no incident face.
func (m *Mesh) IsBoundaryHalfedge(h Halfedge) bool { return !m.hconn[h].face.IsValid() }

// IsBoundaryEdge reports whether either halfedge of e is a boundary halfedge.
func (m *Mesh) IsBoundaryEdge(e Edge) bool {
	return m.IsBoundaryHalfedge(EdgeHalfedge(e, 0)) || m.IsBoundaryHalfedge(EdgeHalfedge(e, 1))
}

// IsBoundaryVertex reports whether v lies on the boundary. Isolated vertices
// count as boundary vertices.
func (m *Mesh) IsBoundaryVertex(v Vertex) bool {
	h := m.vconn[v]
	return !h.IsValid() || !m.hconn[h].face.IsValid()
}

// IsIsolated reports whether v has no incident edge.
func (m *Mesh) IsIsolated(v Vertex) bool { return !m.vconn[v].IsValid() }

// OutgoingHalfedges returns every halfedge leaving v, starting at Outgoing(v).
// Complexity: O(valence).
func (m *Mesh) OutgoingHalfedges(v Vertex) []Halfedge {
	start := m.vconn[v]
	if !start.IsValid() {
		return nil
	}
	out := make([]Halfedge, 0, 8)
	h := start
	for range m.hconn {
		out = append(out, h)
		h = m.cwRotated(h)
		if h == start {
			break
		}
	}

	return out
}

// Neighbors returns the one-ring vertices of v.
func (m *Mesh) Neighbors(v Vertex) []Vertex {
	hs := m.OutgoingHalfedges(v)
	out := make([]Vertex, len(hs))
	for i, h := range hs {
		out[i] = m.hconn[h].to
	}

	return out
}

// Valence returns the number of edges incident to v.
func (m *Mesh) Valence(v Vertex) int { return len(m.OutgoingHalfedges(v)) }

// FindHalfedge returns the halfedge a→b, or InvalidHalfedge if a and b are not adjacent.
func (m *Mesh) FindHalfedge(a, b Vertex) Halfedge {
	start := m.vconn[a]
	if !start.IsValid() {
		return InvalidHalfedge
	}
	h := start
	for range m.hconn {
		if m.hconn[h].to == b {
			return h
		}
		h = m.cwRotated(h)
		if h == start {
			break
		}
	}

	return InvalidHalfedge
}

// FindEdge returns the edge joining a and b, or InvalidEdge.
func (m *Mesh) FindEdge(a, b Vertex) Edge {
	h := m.FindHalfedge(a, b)
	if !h.IsValid() {
		return InvalidEdge
	}

	return EdgeOf(h)
}

// FaceVertices returns the corners of f in stored order: the target of the
// face halfedge first, then the targets of its successors.
func (m *Mesh) FaceVertices(f Face) [3]Vertex {
	h := m.fconn[f]
	h1 := m.hconn[h].next
	h2 := m.hconn[h1].next

	return [3]Vertex{m.hconn[h].to, m.hconn[h1].to, m.hconn[h2].to}
}

// adjustOutgoing makes the stored outgoing halfedge of v a boundary one if v
// lies on the boundary.
func (m *Mesh) adjustOutgoing(v Vertex) {
	start := m.vconn[v]
	if !start.IsValid() {
		return
	}
	h := start
	for range m.hconn {
		if m.IsBoundaryHalfedge(h) {
			m.vconn[v] = h
			return
		}
		h = m.cwRotated(h)
		if h == start {
			return
		}
	}
}

// FaceDegree returns the length of the halfedge cycle of f. It stops counting
// once a cycle exceeds the halfedge table, so a corrupt cycle cannot hang.
func (m *Mesh) FaceDegree(f Face) int {
	start := m.fconn[f]
	n := 0
	h := start
	for range m.hconn {
		n++
		h = m.hconn[h].next
		if h == start || !h.IsValid() {
			break
		}
	}

	return n
}
