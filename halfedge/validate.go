// SPDX-License-Identifier: MIT
// Package halfedge: invariant checker.

package halfedge

import "fmt"

// Validate checks every connectivity invariant of the live part of m and
// returns the first violation wrapped in ErrCorrupt, or ErrNotTriangle for a
// face cycle that does not close after three steps.
//
// Checked:
//   - next/prev are mutual inverses on live halfedges; Next never leaves the
//     live set and the origin of Next(h) is To(h).
//   - every live face is a 3-cycle whose halfedges all name that face and whose
//     corners are distinct live vertices.
//   - the stored outgoing halfedge of a vertex starts at that vertex and is a
//     boundary halfedge whenever the vertex lies on the boundary.
//   - the two halfedges of an edge never share a face.
//
// Complexity: O(V·k + E + F).
func (m *Mesh) Validate() error {
	for e := range m.edeleted {
		if m.edeleted[e] {
			continue
		}
		for i := 0; i < 2; i++ {
			h := EdgeHalfedge(Edge(e), i)
			c := m.hconn[h]
			if !m.validHalfedge(c.next) || !m.validHalfedge(c.prev) {
				return fmt.Errorf("halfedge %d: dangling next/prev: %w", h, ErrCorrupt)
			}
			if m.hconn[c.next].prev != h {
				return fmt.Errorf("halfedge %d: prev(next(h)) != h: %w", h, ErrCorrupt)
			}
			if m.From(c.next) != c.to {
				return fmt.Errorf("halfedge %d: next does not start at target: %w", h, ErrCorrupt)
			}
			if !c.to.IsValid() || m.vdeleted[c.to] {
				return fmt.Errorf("halfedge %d: targets dead vertex %d: %w", h, c.to, ErrCorrupt)
			}
			if c.face.IsValid() && m.fdeleted[c.face] {
				return fmt.Errorf("halfedge %d: references dead face %d: %w", h, c.face, ErrCorrupt)
			}
		}
		f0 := m.hconn[EdgeHalfedge(Edge(e), 0)].face
		f1 := m.hconn[EdgeHalfedge(Edge(e), 1)].face
		if f0.IsValid() && f0 == f1 {
			return fmt.Errorf("edge %d: both halfedges in face %d: %w", e, f0, ErrCorrupt)
		}
	}

	for f := range m.fconn {
		if m.fdeleted[f] {
			continue
		}
		h := m.fconn[f]
		if !m.validHalfedge(h) {
			return fmt.Errorf("face %d: dangling halfedge: %w", f, ErrCorrupt)
		}
		cur := h
		for i := 0; i < 3; i++ {
			if m.hconn[cur].face != Face(f) {
				return fmt.Errorf("face %d: halfedge %d names face %d: %w", f, cur, m.hconn[cur].face, ErrCorrupt)
			}
			cur = m.hconn[cur].next
		}
		if cur != h {
			return fmt.Errorf("face %d: %w", f, ErrNotTriangle)
		}
		c := m.FaceVertices(Face(f))
		if c[0] == c[1] || c[1] == c[2] || c[2] == c[0] {
			return fmt.Errorf("face %d: repeated corner: %w", f, ErrCorrupt)
		}
	}

	for v := range m.points {
		if m.vdeleted[v] {
			continue
		}
		h := m.vconn[v]
		if !h.IsValid() {
			continue
		}
		if !m.validHalfedge(h) || m.From(h) != Vertex(v) {
			return fmt.Errorf("vertex %d: outgoing halfedge %d does not leave it: %w", v, h, ErrCorrupt)
		}
		onBoundary := false
		for _, oh := range m.OutgoingHalfedges(Vertex(v)) {
			if m.From(oh) != Vertex(v) {
				return fmt.Errorf("vertex %d: broken fan at halfedge %d: %w", v, oh, ErrCorrupt)
			}
			if m.IsBoundaryHalfedge(oh) {
				onBoundary = true
			}
		}
		if onBoundary && !m.IsBoundaryHalfedge(h) {
			return fmt.Errorf("vertex %d: boundary vertex with interior outgoing halfedge: %w", v, ErrCorrupt)
		}
	}

	return nil
}
