// SPDX-License-Identifier: MIT
// Package session: the Session type and its pipeline.

package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/heatmesh/config"
	"github.com/katalvlaran/heatmesh/delaunay"
	"github.com/katalvlaran/heatmesh/halfedge"
	"github.com/katalvlaran/heatmesh/internal/logging"
	"github.com/katalvlaran/heatmesh/remesh"
)

// Session holds one mesh and the collaborators that process it.
type Session struct {
	mu sync.Mutex

	id           uuid.UUID
	cfg          config.Config
	log          *log.Logger
	remesher     remesh.Remesher
	triangulator remesh.Triangulator

	mesh *halfedge.Mesh
	// remeshed holds the parameters the current mesh was last remeshed with.
	remeshed *remesh.Params
}

// Report summarizes one Process run.
type Report struct {
	Delaunay delaunay.Result

	Vertices int // live vertices after collection
	Faces    int // live faces after collection

	RemeshTime      time.Duration
	TriangulateTime time.Duration
	DelaunayTime    time.Duration
}

// New returns a session with the default configuration, a logger on stderr at
// the configured level, remesh.Uniform and remesh.FaceTriangulator, each
// replaceable through opts.
//
// Errors: ErrInvalidConfig.
func New(opts ...Option) (*Session, error) {
	s := &Session{id: uuid.New(), cfg: config.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidConfig, err)
	}
	if s.log == nil {
		l, err := logging.New(os.Stderr, s.cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidConfig, err)
		}
		s.log = l
	}
	s.log = s.log.With("session", s.id.String())
	if s.remesher == nil {
		s.remesher = remesh.NewUniform()
	}
	if s.triangulator == nil {
		s.triangulator = remesh.FaceTriangulator{}
	}

	return s, nil
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the effective configuration.
func (s *Session) Config() config.Config { return s.cfg }

// SetMesh replaces the session mesh with the one described by vertices (xyz
// triples) and indices (corner triples).
//
// Behavior:
//   - Lengths must be multiples of 3; otherwise ErrVertexBuffer / ErrIndexBuffer
//     and nothing is read.
//   - Triangles are inserted in input order. In permissive mode (default) the
//     rejected ones are listed in the report; with ingest.strict the first
//     rejection is returned and the previous mesh is kept.
func (s *Session) SetMesh(vertices []float32, indices []int32) (halfedge.IngestReport, error) {
	if len(vertices)%3 != 0 {
		return halfedge.IngestReport{}, fmt.Errorf("%s: %d floats: %w", opSetMesh, len(vertices), ErrVertexBuffer)
	}
	if len(indices)%3 != 0 {
		return halfedge.IngestReport{}, fmt.Errorf("%s: %d indices: %w", opSetMesh, len(indices), ErrIndexBuffer)
	}

	pts := make([]r3.Vec, len(vertices)/3)
	for i := range pts {
		pts[i] = r3.Vec{
			X: float64(vertices[3*i]),
			Y: float64(vertices[3*i+1]),
			Z: float64(vertices[3*i+2]),
		}
	}
	tris := make([][3]int, len(indices)/3)
	for i := range tris {
		tris[i] = [3]int{int(indices[3*i]), int(indices[3*i+1]), int(indices[3*i+2])}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, rep, err := halfedge.FromTriangles(pts, tris, halfedge.WithStrict(s.cfg.Ingest.Strict))
	if err != nil {
		s.log.Error("ingestion aborted", "err", err)
		return rep, fmt.Errorf("%s: %w", opSetMesh, err)
	}
	for _, te := range rep.Skipped {
		s.log.Debug("triangle skipped", "index", te.Index, "corners", te.Corners, "reason", te.Err)
	}
	s.log.Info("mesh ingested", "vertices", rep.Vertices, "triangles", rep.Triangles, "skipped", len(rep.Skipped))
	s.mesh = m
	s.remeshed = nil

	return rep, nil
}

// Process runs remesh → triangulate → Delaunay flips → garbage collection on
// the session mesh.
//
// A mesh this session already remeshed with the current parameters is not
// remeshed again, so a second run on its output changes nothing once the
// Delaunay stage has converged. SetMesh clears that state.
//
// The mesh is compacted even when a stage fails or ctx is cancelled, so it
// always reflects the edits completed so far and stays exportable.
//
// Errors: ErrNoMesh, a stage error, or ctx.Err().
func (s *Session) Process(ctx context.Context) (rep Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.mesh
	if m == nil {
		return rep, fmt.Errorf("%s: %w", opProcess, ErrNoMesh)
	}
	defer func() {
		m.GarbageCollection()
		rep.Vertices, rep.Faces = m.NumVertices(), m.NumFaces()
	}()

	params := remesh.Params{
		TargetEdgeLength: s.cfg.Remesh.TargetEdgeLength,
		Iterations:       s.cfg.Remesh.Iterations,
	}

	// Stage 1: remesh.
	start := time.Now()
	if s.remeshed != nil && *s.remeshed == params {
		s.log.Debug("remesh skipped", "target_edge_length", params.TargetEdgeLength, "iterations", params.Iterations)
	} else {
		if err = s.remesher.Remesh(ctx, m, params); err != nil {
			s.remeshed = nil
			return rep, fmt.Errorf("%s: remesh: %w", opProcess, err)
		}
		s.remeshed = &params
	}
	rep.RemeshTime = time.Since(start)

	// Stage 2: triangulate.
	start = time.Now()
	if err = s.triangulator.Triangulate(m, remesh.MaxAngle); err != nil {
		return rep, fmt.Errorf("%s: triangulate: %w", opProcess, err)
	}
	rep.TriangulateTime = time.Since(start)

	// Stage 3: Delaunay flips.
	start = time.Now()
	res, err := delaunay.Optimize(ctx, m, delaunay.WithMaxPasses(s.cfg.Delaunay.MaxPasses))
	rep.Delaunay = res
	rep.DelaunayTime = time.Since(start)
	if err != nil {
		return rep, fmt.Errorf("%s: delaunay: %w", opProcess, err)
	}
	if !res.Converged {
		s.log.Warn("delaunay pass budget exhausted", "passes", res.Passes, "last_pass_flips", res.LastPassFlips)
	}

	s.log.Info("mesh processed",
		"remesh", rep.RemeshTime,
		"triangulate", rep.TriangulateTime,
		"delaunay", rep.DelaunayTime,
		"flips", res.TotalFlips,
		"passes", res.Passes,
	)

	return rep, nil
}

// NumVertices returns the live vertex count of the session mesh (0 without one).
func (s *Session) NumVertices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mesh == nil {
		return 0
	}

	return s.mesh.NumVertices()
}

// NumIndices returns 3·faces of the session mesh (0 without one).
func (s *Session) NumIndices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mesh == nil {
		return 0
	}

	return 3 * s.mesh.NumFaces()
}

// WriteMesh writes the session mesh into caller buffers: xyz triples into
// outVertices and corner triples into outIndices.
//
// Errors: ErrNoMesh; ErrVertexBuffer unless len(outVertices) == 3·NumVertices();
// ErrIndexBuffer unless len(outIndices) == NumIndices(). Nothing is written on error.
func (s *Session) WriteMesh(outVertices []float32, outIndices []int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.mesh
	if m == nil {
		return fmt.Errorf("%s: %w", opWriteMesh, ErrNoMesh)
	}
	if want := 3 * m.NumVertices(); len(outVertices) != want {
		return fmt.Errorf("%s: got %d floats, want %d: %w", opWriteMesh, len(outVertices), want, ErrVertexBuffer)
	}
	if want := 3 * m.NumFaces(); len(outIndices) != want {
		return fmt.Errorf("%s: got %d indices, want %d: %w", opWriteMesh, len(outIndices), want, ErrIndexBuffer)
	}

	pts, faces := m.Export()
	for i, p := range pts {
		outVertices[3*i] = float32(p.X)
		outVertices[3*i+1] = float32(p.Y)
		outVertices[3*i+2] = float32(p.Z)
	}
	for i, f := range faces {
		outIndices[3*i] = int32(f[0])
		outIndices[3*i+1] = int32(f[1])
		outIndices[3*i+2] = int32(f[2])
	}

	return nil
}
