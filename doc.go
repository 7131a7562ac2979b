// Package heatmesh prepares triangle meshes and solves the sparse linear
// systems of bone-heat skinning.
//
// 🚀 What is inside?
//
//	halfedge/  arena-indexed half-edge mesh: ingestion, circulators, flip,
//	           split, collapse, garbage collection, export
//	delaunay/  Lawson flips toward a locally Delaunay triangulation
//	remesh/    pluggable Remesher / Triangulator, isotropic Uniform default
//	sparse/    simplicial Cholesky for SPD triplet systems, host status codes
//	session/   caller-owned pipeline over flat float32 / int32 buffers
//	config/    TOML configuration
//
// Quick pipeline:
//
//	s, _ := session.New()
//	s.SetMesh(vertices, indices)
//	s.Process(ctx)          // remesh → triangulate → Delaunay → collect
//	s.WriteMesh(outV, outI)
//
//	status := sparse.SolveSPDMatrix(n, n, triplets, rhs, result)
//
// See examples/ for a runnable heat-diffusion scenario.
package heatmesh
