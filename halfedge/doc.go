// Package halfedge implements an arena-indexed half-edge triangle mesh.
//
// What & Why:
//
//	Vertices, edges, halfedges and faces live in flat connectivity tables keyed
//	by integer handles. Edge e owns halfedges 2e and 2e+1, so Opposite is a
//	single XOR. Deleting an element only sets a tombstone; GarbageCollection
//	compacts the tables and renumbers survivors in their original order.
//
// Key operations:
//   - AddVertex / AddTriangle: manifold-preserving incremental construction.
//   - FromTriangles: bulk ingestion from index triples (permissive or strict).
//   - IsFlipOK / Flip, SplitEdge, IsCollapseOK / Collapse: local edits used by
//     the delaunay and remesh packages.
//   - GarbageCollection / Export: compaction and dense re-serialization.
//   - Validate: full invariant check, used by tests and callers that distrust
//     an external remesher.
//
// Concurrency:
//
//	A Mesh is not safe for concurrent mutation. Read-only traversal from several
//	goroutines is fine as long as nobody mutates.
//
// Positions are gonum r3.Vec values (float64).
package halfedge
