// Package delaunay drives a half-edge triangle mesh toward local Delaunay
// optimality with Lawson-style edge flips.
//
// 🚀 What it does
//
//	An interior edge is locally Delaunay when the two angles opposite to it,
//	one in each incident triangle, sum to at most π. Optimize repeatedly scans
//	every live edge and flips the ones that violate this, until a pass makes no
//	flip or the pass budget runs out.
//
// ⚙️ Usage:
//
//	res, err := delaunay.Optimize(ctx, mesh, delaunay.WithMaxPasses(500))
//	if err != nil {
//	  // ctx was cancelled; res holds the passes completed so far
//	}
//	if !res.Converged {
//	  // res.LastPassFlips > 0: the budget ran out before a fixed point
//	}
//
// Numerical policy:
//   - Angles use acos(dot(v1,v2)/(|v1|·|v2|)), vectors from the apex to the
//     edge endpoints. A zero-length vector yields NaN and the edge is left
//     alone, since NaN > π is false.
//
// Complexity: O(P·E·k) for P passes, E edges and average valence k (the flip
// check walks a one-ring).
package delaunay
