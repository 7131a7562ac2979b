// SPDX-License-Identifier: MIT
// Package halfedge: dense re-serialization.

package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// Export returns the live vertices and faces as dense, 0-based arrays.
//
// Behavior:
//   - Live vertices get sequential indices in table order; the mapping is a
//     bijection onto [0, NumVertices()).
//   - Each live face contributes its corners in stored order (see FaceVertices).
//   - Export does not mutate m and does not require GarbageCollection first.
//
// Complexity: O(V + F).
func (m *Mesh) Export() ([]r3.Vec, [][3]int) {
	remap := make([]int, len(m.points))
	points := make([]r3.Vec, 0, m.NumVertices())
	for i, p := range m.points {
		if m.vdeleted[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(points)
		points = append(points, p)
	}

	faces := make([][3]int, 0, m.NumFaces())
	for i := range m.fconn {
		if m.fdeleted[i] {
			continue
		}
		c := m.FaceVertices(Face(i))
		faces = append(faces, [3]int{remap[c[0]], remap[c[1]], remap[c[2]]})
	}

	return points, faces
}
