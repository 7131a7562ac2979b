// Package session is the caller-owned mesh pipeline: ingest flat host
// buffers, process the mesh, and export it back into flat buffers.
//
// A Session owns one mesh at a time. Its methods are serialized by a mutex,
// so a Session may be shared between goroutines; independent sessions share
// nothing.
//
// ⚙️ Usage:
//
//	s, err := session.New(session.WithConfig(cfg))
//	rep, err := s.SetMesh(vertices, indices)    // xyz triples, index triples
//	res, err := s.Process(ctx)                   // remesh → triangulate → Delaunay → collect
//	outV := make([]float32, 3*s.NumVertices())
//	outI := make([]int32, s.NumIndices())
//	err = s.WriteMesh(outV, outI)
//
// Buffer sizes are checked before anything is read or written; a mismatch is
// reported as ErrInputContract.
package session
