// SPDX-License-Identifier: MIT
// Package halfedge: garbage collection (order-preserving compaction).

package halfedge

// GarbageCollection physically removes tombstoned vertices, edges and faces.
//
// Implementation:
//   - Stage 1: compact each table in place, keeping survivors in their
//     original relative order, and record old→new handle maps.
//   - Stage 2: rewrite every stored handle through the maps.
//   - Stage 3: truncate the tables and reset the deletion counters.
//
// Determinism: survivor order is preserved, so repeated collection on a mesh
// without garbage is a no-op.
// Complexity: O(V + E + F) time, O(V + E + F) extra space for the maps.
func (m *Mesh) GarbageCollection() {
	if !m.HasGarbage() {
		return
	}

	vmap := make([]Vertex, len(m.points))
	nv := 0
	for i := range m.points {
		if m.vdeleted[i] {
			vmap[i] = InvalidVertex
			continue
		}
		vmap[i] = Vertex(nv)
		m.points[nv] = m.points[i]
		m.vconn[nv] = m.vconn[i]
		nv++
	}

	emap := make([]Edge, len(m.edeleted))
	ne := 0
	for i := range m.edeleted {
		if m.edeleted[i] {
			emap[i] = InvalidEdge
			continue
		}
		emap[i] = Edge(ne)
		m.hconn[2*ne] = m.hconn[2*i]
		m.hconn[2*ne+1] = m.hconn[2*i+1]
		ne++
	}

	fmap := make([]Face, len(m.fconn))
	nf := 0
	for i := range m.fconn {
		if m.fdeleted[i] {
			fmap[i] = InvalidFace
			continue
		}
		fmap[i] = Face(nf)
		m.fconn[nf] = m.fconn[i]
		nf++
	}

	hmap := func(h Halfedge) Halfedge {
		if !h.IsValid() {
			return InvalidHalfedge
		}
		ne := emap[EdgeOf(h)]
		if !ne.IsValid() {
			return InvalidHalfedge
		}

		return EdgeHalfedge(ne, int(h&1))
	}

	for v := 0; v < nv; v++ {
		m.vconn[v] = hmap(m.vconn[v])
	}
	for h := 0; h < 2*ne; h++ {
		c := &m.hconn[h]
		c.to = vmap[c.to]
		c.next = hmap(c.next)
		c.prev = hmap(c.prev)
		if c.face.IsValid() {
			c.face = fmap[c.face]
		}
	}
	for f := 0; f < nf; f++ {
		m.fconn[f] = hmap(m.fconn[f])
	}

	m.points = m.points[:nv]
	m.vconn = m.vconn[:nv]
	m.vdeleted = resetFlags(m.vdeleted, nv)
	m.hconn = m.hconn[:2*ne]
	m.edeleted = resetFlags(m.edeleted, ne)
	m.fconn = m.fconn[:nf]
	m.fdeleted = resetFlags(m.fdeleted, nf)
	m.deletedVertices, m.deletedEdges, m.deletedFaces = 0, 0, 0
}

// resetFlags truncates flags to n entries, all false.
func resetFlags(flags []bool, n int) []bool {
	flags = flags[:n]
	clear(flags)

	return flags
}
