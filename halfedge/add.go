// SPDX-License-Identifier: MIT
// Package halfedge: manifold-preserving triangle insertion.

package halfedge

// nextLink is a deferred setNext(a, b) call.
type nextLink struct{ a, b Halfedge }

// AddTriangle inserts the face (a, b, c) with that winding and returns its handle.
//
// Implementation:
//   - Stage 1 (Validate): handles live and distinct; each corner must still be on
//     the boundary; each existing edge must be free on the requested side; the
//     triple must not already be a face in either winding.
//   - Stage 2 (Relink): when two consecutive edges already exist but are not
//     consecutive on the boundary, the boundary patch between them is moved
//     into a free gap of the fan. Links are only recorded here.
//   - Stage 3 (Execute): create missing edges and the face, splice halfedge
//     cycles, then apply recorded links and fix outgoing halfedges.
//
// On error the mesh is left untouched.
//
// Errors: ErrInvalidVertex, ErrDegenerateFace, ErrDuplicateFace,
// ErrComplexVertex, ErrComplexEdge, ErrPatchRelink (all wrap ErrTopology).
//
// Complexity: O(sum of corner valences).
func (m *Mesh) AddTriangle(a, b, c Vertex) (Face, error) {
	verts := [3]Vertex{a, b, c}
	for _, v := range verts {
		if !v.IsValid() || int(v) >= len(m.points) || m.vdeleted[v] {
			return InvalidFace, ErrInvalidVertex
		}
	}
	if a == b || b == c || c == a {
		return InvalidFace, ErrDegenerateFace
	}

	var (
		hs    [3]Halfedge
		isNew [3]bool
	)
	for i := 0; i < 3; i++ {
		hs[i] = m.FindHalfedge(verts[i], verts[(i+1)%3])
		isNew[i] = !hs[i].IsValid()
	}
	if m.isDuplicateFace(hs, isNew) {
		return InvalidFace, ErrDuplicateFace
	}
	for i := 0; i < 3; i++ {
		if !m.IsBoundaryVertex(verts[i]) {
			return InvalidFace, ErrComplexVertex
		}
		if !isNew[i] && !m.IsBoundaryHalfedge(hs[i]) {
			return InvalidFace, ErrComplexEdge
		}
	}

	links := make([]nextLink, 0, 18)

	// Stage 2: re-link patches where both consecutive edges already exist.
	for i := 0; i < 3; i++ {
		ii := (i + 1) % 3
		if isNew[i] || isNew[ii] {
			continue
		}
		innerPrev, innerNext := hs[i], hs[ii]
		if m.hconn[innerPrev].next == innerNext {
			continue
		}
		// search a free gap between boundaryPrev and boundaryNext
		boundaryPrev := Opposite(innerNext)
		found := false
		for range m.hconn {
			boundaryPrev = Opposite(m.hconn[boundaryPrev].next)
			if m.IsBoundaryHalfedge(boundaryPrev) && boundaryPrev != innerPrev {
				found = true
				break
			}
		}
		if !found {
			return InvalidFace, ErrPatchRelink
		}
		boundaryNext := m.hconn[boundaryPrev].next
		if boundaryNext == innerNext {
			return InvalidFace, ErrPatchRelink
		}
		patchStart := m.hconn[innerPrev].next
		patchEnd := m.hconn[innerNext].prev
		links = append(links,
			nextLink{boundaryPrev, patchStart},
			nextLink{patchEnd, boundaryNext},
			nextLink{innerPrev, innerNext},
		)
	}

	// Stage 3: create missing edges and the face.
	for i := 0; i < 3; i++ {
		if isNew[i] {
			hs[i] = m.newEdge(verts[i], verts[(i+1)%3])
		}
	}
	f := m.newFace()
	m.fconn[f] = hs[2]

	var needsAdjust [3]bool
	for i := 0; i < 3; i++ {
		ii := (i + 1) % 3
		v := verts[ii]
		innerPrev, innerNext := hs[i], hs[ii]

		id := 0
		if isNew[i] {
			id |= 1
		}
		if isNew[ii] {
			id |= 2
		}

		if id != 0 {
			outerPrev := Opposite(innerNext)
			outerNext := Opposite(innerPrev)
			switch id {
			case 1: // prev is new, next is old
				boundaryPrev := m.hconn[innerNext].prev
				links = append(links, nextLink{boundaryPrev, outerNext})
				m.vconn[v] = outerNext
			case 2: // next is new, prev is old
				boundaryNext := m.hconn[innerPrev].next
				links = append(links, nextLink{outerPrev, boundaryNext})
				m.vconn[v] = boundaryNext
			case 3: // both are new
				if !m.vconn[v].IsValid() {
					m.vconn[v] = outerNext
					links = append(links, nextLink{outerPrev, outerNext})
				} else {
					boundaryNext := m.vconn[v]
					boundaryPrev := m.hconn[boundaryNext].prev
					links = append(links,
						nextLink{boundaryPrev, outerNext},
						nextLink{outerPrev, boundaryNext},
					)
				}
			}
			links = append(links, nextLink{innerPrev, innerNext})
		} else {
			needsAdjust[ii] = m.vconn[v] == innerNext
		}
		m.hconn[hs[i]].face = f
	}

	for _, l := range links {
		m.setNext(l.a, l.b)
	}
	for i := 0; i < 3; i++ {
		if needsAdjust[i] {
			m.adjustOutgoing(verts[i])
		}
	}

	return f, nil
}

// isDuplicateFace reports whether the three existing halfedges hs, or their
// opposites, already close a single face.
func (m *Mesh) isDuplicateFace(hs [3]Halfedge, isNew [3]bool) bool {
	if isNew[0] || isNew[1] || isNew[2] {
		return false
	}
	same := func(f0, f1, f2 Face) bool { return f0.IsValid() && f0 == f1 && f1 == f2 }
	if same(m.hconn[hs[0]].face, m.hconn[hs[1]].face, m.hconn[hs[2]].face) {
		return true
	}

	return same(
		m.hconn[Opposite(hs[0])].face,
		m.hconn[Opposite(hs[1])].face,
		m.hconn[Opposite(hs[2])].face,
	)
}
