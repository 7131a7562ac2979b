// SPDX-License-Identifier: MIT
// Package halfedge: bulk ingestion from point and index-triple sequences.

package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// DefaultStrict is the default ingestion mode: offending triangles are skipped.
const DefaultStrict = false

// IngestOption configures FromTriangles / (*Mesh).Ingest.
type IngestOption func(*ingestOptions)

type ingestOptions struct {
	strict bool
}

// WithStrict selects strict mode (abort on the first rejected triangle) when
// true, permissive mode (skip and continue) when false.
func WithStrict(strict bool) IngestOption {
	return func(o *ingestOptions) { o.strict = strict }
}

// IngestReport summarizes one ingestion.
type IngestReport struct {
	Vertices  int              // vertices inserted
	Triangles int              // triangles accepted
	Skipped   []*TriangleError // rejected triangles, in input order
}

// FromTriangles builds a fresh mesh from points and index triples.
// See (*Mesh).Ingest for the insertion rules.
func FromTriangles(points []r3.Vec, tris [][3]int, opts ...IngestOption) (*Mesh, IngestReport, error) {
	m := New()
	rep, err := m.Ingest(points, tris, opts...)
	if err != nil {
		return nil, rep, err
	}

	return m, rep, nil
}

// Ingest clears m and inserts every point, then every triangle in input order.
//
// Behavior:
//   - Points are stored verbatim; vertex i of the input is handle Vertex(i).
//   - A triangle with an out-of-range index, repeated corners, a non-manifold
//     configuration or an existing identical face is rejected with a
//     *TriangleError. Permissive mode records it in IngestReport.Skipped and
//     continues; strict mode returns it and leaves the partially built mesh.
//
// Complexity: O(V + T·k) where k is the average corner valence.
func (m *Mesh) Ingest(points []r3.Vec, tris [][3]int, opts ...IngestOption) (IngestReport, error) {
	cfg := ingestOptions{strict: DefaultStrict}
	for _, opt := range opts {
		opt(&cfg)
	}

	m.Clear()
	var rep IngestReport
	for _, p := range points {
		m.AddVertex(p)
	}
	rep.Vertices = len(points)

	n := len(points)
	for i, t := range tris {
		var err error
		if t[0] < 0 || t[0] >= n || t[1] < 0 || t[1] >= n || t[2] < 0 || t[2] >= n {
			err = ErrInvalidVertex
		} else {
			_, err = m.AddTriangle(Vertex(t[0]), Vertex(t[1]), Vertex(t[2]))
		}
		if err == nil {
			rep.Triangles++
			continue
		}
		te := &TriangleError{Index: i, Corners: t, Err: err}
		if cfg.strict {
			return rep, te
		}
		rep.Skipped = append(rep.Skipped, te)
	}

	return rep, nil
}
