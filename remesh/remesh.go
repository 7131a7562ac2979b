// SPDX-License-Identifier: MIT
// Package remesh: collaborator interfaces and their parameters.

package remesh

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/heatmesh/halfedge"
)

// Default parameter values.
const (
	DefaultTargetEdgeLength = 0.5
	DefaultIterations       = 10
)

// Params controls one remeshing run.
type Params struct {
	// TargetEdgeLength is the desired edge length L. Edges above 4/3·L are
	// split, edges below 4/5·L collapsed.
	TargetEdgeLength float64

	// Iterations is the number of split/collapse/flip/smooth rounds.
	Iterations int
}

// DefaultParams returns Params{TargetEdgeLength: 0.5, Iterations: 10}.
func DefaultParams() Params {
	return Params{TargetEdgeLength: DefaultTargetEdgeLength, Iterations: DefaultIterations}
}

// Validate reports ErrInvalidParams for a non-positive or non-finite length
// or a negative iteration count.
func (p Params) Validate() error {
	if !(p.TargetEdgeLength > 0) || math.IsInf(p.TargetEdgeLength, 0) {
		return fmt.Errorf("target edge length %v: %w", p.TargetEdgeLength, ErrInvalidParams)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", p.Iterations, ErrInvalidParams)
	}

	return nil
}

// Remesher reshapes m in place. Implementations must leave m a valid triangle
// mesh (deletions as tombstones) and should stop with ctx.Err() when ctx is
// cancelled between rounds.
type Remesher interface {
	Remesh(ctx context.Context, m *halfedge.Mesh, p Params) error
}

// Objective selects what a Triangulator optimizes when it has to split a
// polygon into triangles.
type Objective int

const (
	// MaxAngle minimizes the largest angle of the resulting triangles.
	MaxAngle Objective = iota
	// MinArea minimizes the total area of the resulting triangles.
	MinArea
)

// String returns the objective name.
func (o Objective) String() string {
	switch o {
	case MaxAngle:
		return "max-angle"
	case MinArea:
		return "min-area"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// Triangulator makes every face of m a triangle.
type Triangulator interface {
	Triangulate(m *halfedge.Mesh, obj Objective) error
}

// FaceTriangulator is the default Triangulator for a triangle-only store: it
// verifies every live face is a 3-cycle and returns halfedge.ErrNotTriangle
// for the first one that is not.
type FaceTriangulator struct{}

// Triangulate implements Triangulator. The objective is accepted but has no
// choice to make on triangles.
func (FaceTriangulator) Triangulate(m *halfedge.Mesh, _ Objective) error {
	if m == nil {
		return fmt.Errorf("%s: %w", opTriangulate, ErrNilMesh)
	}
	for _, f := range m.Faces() {
		if d := m.FaceDegree(f); d != 3 {
			return fmt.Errorf("%s: face %d has %d sides: %w", opTriangulate, f, d, halfedge.ErrNotTriangle)
		}
	}

	return nil
}

var (
	_ Remesher     = (*Uniform)(nil)
	_ Triangulator = FaceTriangulator{}
)
