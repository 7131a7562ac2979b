// Package sparse solves symmetric positive-definite linear systems given as
// coordinate triplets, with a simplicial Cholesky factorization A = L·Lᵀ.
//
// 🚀 Model
//
//	Only the lower triangle (Row >= Col) of A is read. Upper-triangle triplets
//	are accepted and ignored; duplicate triplets are summed. The factor is
//	computed in natural ordering (no fill-reducing permutation) by an
//	up-looking algorithm driven by the elimination tree.
//
// ⚙️ Usage:
//
//	m, _ := sparse.NewMatrix(3, 3)
//	_ = m.Add(0, 0, 4)
//	_ = m.Add(1, 0, -1)
//	...
//	ch, err := sparse.Factorize(m)
//	if errors.Is(err, sparse.ErrNotPositiveDefinite) { ... }
//	x, err := ch.Solve(b)
//
// A *Cholesky is read-only after Factorize, so one factor can serve many
// right-hand sides concurrently (SolveMany).
//
// Host entry point:
//
//	SolveSPDMatrix mirrors the flat-buffer contract of the skinning host and
//	reports a Status code instead of an error: 0 success, 1 decomposition
//	failed, 2 solve failed, 3 invalid input.
//
// Backends:
//   - SimplicialBackend (default): sparse up-looking LLᵀ.
//   - DenseBackend: gonum mat.Cholesky on a dense symmetric copy; O(n³), for
//     small systems and cross-checking.
package sparse
