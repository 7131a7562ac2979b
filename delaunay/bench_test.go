// SPDX-License-Identifier: MIT
package delaunay_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/heatmesh/delaunay"
)

func BenchmarkOptimize(b *testing.B) {
	pts, tris := jitteredGrid(30, 0.1, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := mustMesh(b, pts, tris)
		b.StartTimer()
		if _, err := delaunay.Optimize(context.Background(), m); err != nil {
			b.Fatal(err)
		}
	}
}
