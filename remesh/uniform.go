// SPDX-License-Identifier: MIT
// Package remesh: isotropic remeshing toward a uniform edge length.

package remesh

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/heatmesh/halfedge"
)

// Uniform is the default Remesher. The zero value is not usable; build one
// with NewUniform.
type Uniform struct {
	smoothingSteps int
	splitSweeps    int
	flipSweeps     int
}

// NewUniform returns a Uniform remesher with defaults overridden by opts.
func NewUniform(opts ...Option) *Uniform {
	u := &Uniform{
		smoothingSteps: DefaultSmoothingSteps,
		splitSweeps:    DefaultSplitSweeps,
		flipSweeps:     DefaultFlipSweeps,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}

	return u
}

// Remesh runs p.Iterations rounds over m.
//
// Implementation (per round):
//   - Stage 1: split every edge longer than 4/3·L at its midpoint, sweeping
//     until none is left or the sweep cap is reached.
//   - Stage 2: collapse edges shorter than 4/5·L when the link condition holds,
//     no resulting edge exceeds 4/3·L and no surrounding triangle turns over.
//     A boundary vertex is only ever merged along a boundary edge.
//   - Stage 3: flip interior edges whose flip strictly lowers the squared
//     valence deviation of the four vertices (optimum 6 inside, 4 on the
//     boundary).
//   - Stage 4: move every interior vertex toward its one-ring centroid within
//     the tangent plane of its normal.
//
// ctx is checked before each round. Errors: ErrNilMesh, ErrInvalidParams,
// ctx.Err(). On cancellation m is valid but partially remeshed.
func (u *Uniform) Remesh(ctx context.Context, m *halfedge.Mesh, p Params) error {
	if m == nil {
		return fmt.Errorf("%s: %w", opRemesh, ErrNilMesh)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s: %w", opRemesh, err)
	}
	hi := 4.0 / 3.0 * p.TargetEdgeLength
	lo := 4.0 / 5.0 * p.TargetEdgeLength

	for i := 0; i < p.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		u.splitLongEdges(m, hi)
		collapseShortEdges(m, lo, hi)
		u.equalizeValences(m)
		tangentialSmoothing(m, u.smoothingSteps)
	}

	return nil
}

// splitLongEdges splits every live edge longer than hi at its midpoint.
// Edges created by a sweep are visited by the next one.
func (u *Uniform) splitLongEdges(m *halfedge.Mesh, hi float64) {
	for sweep := 0; sweep < u.splitSweeps; sweep++ {
		done := true
		n := m.EdgesSize()
		for i := 0; i < n; i++ {
			e := halfedge.Edge(i)
			if m.IsEdgeDeleted(e) || m.EdgeLength(e) <= hi {
				continue
			}
			if _, err := m.SplitEdge(e, m.Midpoint(e)); err == nil {
				done = false
			}
		}
		if done {
			return
		}
	}
}

// collapseShortEdges runs one sweep of short-edge collapses.
func collapseShortEdges(m *halfedge.Mesh, lo, hi float64) {
	n := m.EdgesSize()
	for i := 0; i < n; i++ {
		e := halfedge.Edge(i)
		if m.IsEdgeDeleted(e) || m.EdgeLength(e) >= lo {
			continue
		}
		h10 := halfedge.EdgeHalfedge(e, 0) // removes v1, keeps v0
		h01 := halfedge.EdgeHalfedge(e, 1) // removes v0, keeps v1
		v0 := m.To(h10)
		v1 := m.To(h01)
		b0 := m.IsBoundaryVertex(v0)
		b1 := m.IsBoundaryVertex(v1)

		col10, col01 := true, true
		switch {
		case b0 && b1:
			if !m.IsBoundaryEdge(e) {
				continue
			}
		case b0:
			col01 = false
		case b1:
			col10 = false
		}

		col01 = col01 && !createsLongEdge(m, v0, v1, hi) && !turnsOver(m, v0, v1)
		col10 = col10 && !createsLongEdge(m, v1, v0, hi) && !turnsOver(m, v1, v0)
		if col01 && col10 {
			// remove the vertex of lower valence
			if m.Valence(v0) < m.Valence(v1) {
				col10 = false
			} else {
				col01 = false
			}
		}

		switch {
		case col10 && m.IsCollapseOK(h10):
			_ = m.Collapse(h10)
		case col01 && m.IsCollapseOK(h01):
			_ = m.Collapse(h01)
		}
	}
}

// createsLongEdge reports whether merging gone into keep would leave an edge
// from keep longer than hi.
func createsLongEdge(m *halfedge.Mesh, gone, keep halfedge.Vertex, hi float64) bool {
	pk := m.Position(keep)
	for _, w := range m.Neighbors(gone) {
		if r3.Norm(r3.Sub(m.Position(w), pk)) > hi {
			return true
		}
	}

	return false
}

// turnsOver reports whether moving gone onto keep reverses the orientation of
// any triangle around gone that survives the collapse.
func turnsOver(m *halfedge.Mesh, gone, keep halfedge.Vertex) bool {
	pk := m.Position(keep)
	for _, h := range m.OutgoingHalfedges(gone) {
		f := m.FaceOf(h)
		if !f.IsValid() {
			continue
		}
		c := m.FaceVertices(f)
		if c[0] == keep || c[1] == keep || c[2] == keep {
			continue
		}
		var before, after [3]r3.Vec
		for k, v := range c {
			before[k] = m.Position(v)
			after[k] = before[k]
			if v == gone {
				after[k] = pk
			}
		}
		if r3.Dot(triangleNormal(before), triangleNormal(after)) <= 0 {
			return true
		}
	}

	return false
}

// equalizeValences flips interior edges that reduce the valence deviation.
func (u *Uniform) equalizeValences(m *halfedge.Mesh) {
	for sweep := 0; sweep < u.flipSweeps; sweep++ {
		done := true
		n := m.EdgesSize()
		for i := 0; i < n; i++ {
			e := halfedge.Edge(i)
			if m.IsEdgeDeleted(e) || m.IsBoundaryEdge(e) {
				continue
			}
			h0 := halfedge.EdgeHalfedge(e, 0)
			h1 := halfedge.EdgeHalfedge(e, 1)
			quad := [4]halfedge.Vertex{
				m.To(h0),
				m.To(h1),
				m.To(m.Next(h0)),
				m.To(m.Next(h1)),
			}
			var val, opt [4]int
			for k, v := range quad {
				val[k] = m.Valence(v)
				opt[k] = 6
				if m.IsBoundaryVertex(v) {
					opt[k] = 4
				}
			}
			before := deviation(val, opt)
			val[0]--
			val[1]--
			val[2]++
			val[3]++
			if deviation(val, opt) >= before || !m.IsFlipOK(e) || !flipKeepsOrientation(m, e) {
				continue
			}
			if err := m.Flip(e); err == nil {
				done = false
			}
		}
		if done {
			return
		}
	}
}

// deviation is the sum of squared differences between val and opt.
func deviation(val, opt [4]int) int {
	s := 0
	for k := range val {
		d := val[k] - opt[k]
		s += d * d
	}

	return s
}

// flipKeepsOrientation reports whether both triangles created by flipping e
// face the same side as the pair they replace. A flip across a non-convex
// quad would fold the surface.
func flipKeepsOrientation(m *halfedge.Mesh, e halfedge.Edge) bool {
	h0 := halfedge.EdgeHalfedge(e, 0)
	h1 := halfedge.EdgeHalfedge(e, 1)
	a := m.Position(m.From(h0))
	b := m.Position(m.To(h0))
	c := m.Position(m.To(m.Next(h0)))
	d := m.Position(m.To(m.Next(h1)))

	ref := r3.Add(triangleNormal([3]r3.Vec{a, b, c}), triangleNormal([3]r3.Vec{b, a, d}))

	return r3.Dot(ref, triangleNormal([3]r3.Vec{a, d, c})) > 0 &&
		r3.Dot(ref, triangleNormal([3]r3.Vec{d, b, c})) > 0
}

// tangentialSmoothing moves interior vertices toward their centroids inside
// their tangent planes. Updates of one sweep are applied together.
func tangentialSmoothing(m *halfedge.Mesh, steps int) {
	update := make([]r3.Vec, m.VerticesSize())
	for s := 0; s < steps; s++ {
		verts := m.Vertices()
		for _, v := range verts {
			update[v] = r3.Vec{}
			if m.IsBoundaryVertex(v) {
				continue
			}
			u := r3.Sub(m.Centroid(v), m.Position(v))
			n := m.VertexNormal(v)
			update[v] = r3.Sub(u, r3.Scale(r3.Dot(u, n), n))
		}
		for _, v := range verts {
			m.SetPosition(v, r3.Add(m.Position(v), update[v]))
		}
	}
}

// triangleNormal is the unnormalized normal (t1-t0)×(t2-t0).
func triangleNormal(t [3]r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}
