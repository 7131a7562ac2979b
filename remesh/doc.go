// Package remesh holds the remeshing and triangulation collaborators of the
// mesh pipeline.
//
// Both stages sit behind narrow interfaces so callers can plug in their own:
//
//	Remesher      // reshapes a mesh toward a target edge length
//	Triangulator  // guarantees every face is a triangle
//
// Defaults:
//   - Uniform: isotropic remeshing by split / collapse / valence flips /
//     tangential smoothing. Boundary vertices never move off the boundary and
//     are never smoothed. There is no projection back to the input surface.
//   - FaceTriangulator: the mesh store only holds triangles, so it checks that
//     every live face is a 3-cycle.
//
// Deletions made by a Remesher are tombstones; run GarbageCollection on the
// mesh before exporting.
package remesh
