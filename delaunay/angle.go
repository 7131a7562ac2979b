// SPDX-License-Identifier: MIT
// Package delaunay: opposite-angle geometry.

package delaunay

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/heatmesh/halfedge"
)

// Angle returns the angle at apex between the rays towards p and q, in
// radians. It is NaN when apex coincides with p or q.
func Angle(apex, p, q r3.Vec) float64 {
	v1 := r3.Sub(p, apex)
	v2 := r3.Sub(q, apex)
	c := r3.Dot(v1, v2) / (r3.Norm(v1) * r3.Norm(v2))

	// Rounding can push |c| past 1 for nearly collinear rays; NaN passes through.
	return math.Acos(clamp(c, -1, 1))
}

// OppositeAngleSum returns the sum of the two angles opposite e. ok is false
// for boundary and deleted edges. The sum is NaN for degenerate triangles.
func OppositeAngleSum(m *halfedge.Mesh, e halfedge.Edge) (sum float64, ok bool) {
	if m.IsEdgeDeleted(e) || m.IsBoundaryEdge(e) {
		return 0, false
	}
	h0 := halfedge.EdgeHalfedge(e, 0)
	h1 := halfedge.EdgeHalfedge(e, 1)

	p := m.Position(m.From(h0))
	q := m.Position(m.To(h0))
	apex0 := m.Position(m.To(m.Next(h0)))
	apex1 := m.Position(m.To(m.Next(h1)))

	return Angle(apex0, p, q) + Angle(apex1, p, q), true
}

// IsLocallyDelaunay reports whether e satisfies the opposite-angle criterion.
// Boundary edges and degenerate configurations count as Delaunay.
func IsLocallyDelaunay(m *halfedge.Mesh, e halfedge.Edge) bool {
	sum, ok := OppositeAngleSum(m, e)
	return !ok || !(sum > math.Pi)
}

// clamp limits f to [low, high]. NaN is returned unchanged.
func clamp[T constraints.Float](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}

	return f
}
