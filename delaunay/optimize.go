// SPDX-License-Identifier: MIT
// Package delaunay: the flip loop.

package delaunay

import (
	"context"
	"math"

	"github.com/katalvlaran/heatmesh/halfedge"
)

// Result reports the outcome of Optimize.
type Result struct {
	// LastPassFlips is the flip count of the last executed pass. Zero means the
	// mesh reached a fixed point; non-zero means the pass budget ran out.
	LastPassFlips int

	// TotalFlips sums the flips of every executed pass.
	TotalFlips int

	// Passes is the number of completed passes.
	Passes int

	// Converged is true when the last pass made no flip.
	Converged bool
}

// Optimize flips non-Delaunay edges of m until a pass makes no flip or the pass
// budget (WithMaxPasses, default 10,000) is exhausted.
//
// Implementation:
//   - Stage 1: check ctx; on cancellation return the partial Result and ctx.Err().
//   - Stage 2: scan edges in handle order; skip deleted and boundary edges and
//     those rejected by IsFlipOK; flip when the opposite-angle sum exceeds π.
//   - Stage 3: record the pass; stop early on a zero-flip pass.
//
// Flips reuse edge handles, so the scan range is fixed within a pass.
//
// Errors: ErrNilMesh, or ctx.Err() when cancelled between passes.
func Optimize(ctx context.Context, m *halfedge.Mesh, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMesh
	}
	cfg := gatherOptions(opts...)

	var res Result
	for res.Passes < cfg.maxPasses {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		flips := pass(m)
		res.Passes++
		res.LastPassFlips = flips
		res.TotalFlips += flips
		if cfg.onPass != nil {
			cfg.onPass(res.Passes, flips)
		}
		if flips == 0 {
			res.Converged = true
			break
		}
	}

	return res, nil
}

// pass runs one scan over every edge and returns the number of flips.
func pass(m *halfedge.Mesh) int {
	flips := 0
	n := m.EdgesSize()
	for i := 0; i < n; i++ {
		e := halfedge.Edge(i)
		if m.IsEdgeDeleted(e) || m.IsBoundaryEdge(e) || !m.IsFlipOK(e) {
			continue
		}
		sum, _ := OppositeAngleSum(m, e)
		if sum > math.Pi {
			if err := m.Flip(e); err == nil {
				flips++
			}
		}
	}

	return flips
}
