// SPDX-License-Identifier: MIT
// Package halfedge: sentinel error set.
//
// Every specific topology failure wraps ErrTopology, so callers may match
// either the precise cause or the whole category with errors.Is.

package halfedge

import (
	"errors"
	"fmt"
)

// ErrTopology is the category of every connectivity violation: invalid or
// degenerate triangles, non-manifold insertions and illegal local edits.
var ErrTopology = errors.New("halfedge: topology error")

var (
	// ErrInvalidVertex indicates a vertex handle that is out of range or deleted.
	ErrInvalidVertex = fmt.Errorf("%w: invalid vertex", ErrTopology)

	// ErrDegenerateFace indicates a triangle whose corners are not three distinct vertices.
	ErrDegenerateFace = fmt.Errorf("%w: degenerate face", ErrTopology)

	// ErrComplexVertex indicates a corner that is already surrounded by faces.
	ErrComplexVertex = fmt.Errorf("%w: complex vertex", ErrTopology)

	// ErrComplexEdge indicates an edge that already borders a face on the requested side.
	ErrComplexEdge = fmt.Errorf("%w: complex edge", ErrTopology)

	// ErrPatchRelink indicates the boundary fan around a corner could not be relinked.
	ErrPatchRelink = fmt.Errorf("%w: patch re-linking failed", ErrTopology)

	// ErrDuplicateFace indicates the vertex triple already forms a face.
	ErrDuplicateFace = fmt.Errorf("%w: duplicate face", ErrTopology)

	// ErrFlipNotAllowed indicates Flip on an edge rejected by IsFlipOK.
	ErrFlipNotAllowed = fmt.Errorf("%w: edge flip not allowed", ErrTopology)

	// ErrCollapseNotAllowed indicates Collapse on a halfedge rejected by IsCollapseOK.
	ErrCollapseNotAllowed = fmt.Errorf("%w: halfedge collapse not allowed", ErrTopology)

	// ErrInvalidEdge indicates an edge or halfedge handle that is out of range or deleted.
	ErrInvalidEdge = fmt.Errorf("%w: invalid edge", ErrTopology)

	// ErrNotTriangle indicates a live face whose cycle does not close after three steps.
	ErrNotTriangle = fmt.Errorf("%w: face is not a triangle", ErrTopology)

	// ErrCorrupt indicates a broken connectivity invariant found by Validate.
	ErrCorrupt = fmt.Errorf("%w: corrupt connectivity", ErrTopology)
)

// TriangleError records why one input triangle was rejected during ingestion.
type TriangleError struct {
	Index   int    // position of the triangle in the input sequence
	Corners [3]int // raw input indices
	Err     error  // underlying topology sentinel
}

func (e *TriangleError) Error() string {
	return fmt.Sprintf("halfedge: triangle %d %v: %v", e.Index, e.Corners, e.Err)
}

func (e *TriangleError) Unwrap() error { return e.Err }
