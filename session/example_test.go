// SPDX-License-Identifier: MIT
package session_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heatmesh/internal/logging"
	"github.com/katalvlaran/heatmesh/session"
)

// Example runs the whole pipeline on an equilateral fan that is already at the
// target edge length, so the mesh comes back unchanged.
func Example() {
	s, err := session.New(session.WithLogger(logging.Discard()))
	if err != nil {
		fmt.Println(err)
		return
	}
	vertices, indices := hexagonBuffers(0.5)
	if _, err := s.SetMesh(vertices, indices); err != nil {
		fmt.Println(err)
		return
	}
	rep, err := s.Process(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	outV := make([]float32, 3*s.NumVertices())
	outI := make([]int32, s.NumIndices())
	fmt.Println(s.WriteMesh(outV, outI), rep.Delaunay.TotalFlips, s.NumVertices(), s.NumIndices())
	fmt.Println(outI[:6])
	// Output:
	// <nil> 0 7 18
	// [0 1 2 0 2 3]
}
