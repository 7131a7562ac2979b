// SPDX-License-Identifier: MIT
// Package sparse: compressed-column assembly.

package sparse

import (
	"cmp"
	"slices"
)

// csc is a square matrix in compressed-column form. Row indices within a
// column are strictly increasing.
type csc struct {
	n      int
	colPtr []int
	rowIdx []int
	val    []float64
}

// upperFromLower compresses the lower-triangle triplets of an n×n matrix into
// the upper triangle of its symmetric completion: entry (r, c) with r >= c is
// stored as (c, r). Upper-triangle triplets are dropped and duplicates summed.
//
// Complexity: O(T log T) for T triplets.
func upperFromLower(n int, ts []Triplet) csc {
	counts := make([]int, n+1)
	for _, t := range ts {
		if t.Row >= t.Col {
			counts[t.Row+1]++
		}
	}
	for j := 0; j < n; j++ {
		counts[j+1] += counts[j]
	}

	type entry struct {
		row int
		val float64
	}
	entries := make([]entry, counts[n])
	next := slices.Clone(counts[:n])
	for _, t := range ts {
		if t.Row >= t.Col {
			entries[next[t.Row]] = entry{row: t.Col, val: t.Value}
			next[t.Row]++
		}
	}

	out := csc{
		n:      n,
		colPtr: make([]int, n+1),
		rowIdx: make([]int, 0, len(entries)),
		val:    make([]float64, 0, len(entries)),
	}
	for j := 0; j < n; j++ {
		col := entries[counts[j]:counts[j+1]]
		slices.SortStableFunc(col, func(a, b entry) int { return cmp.Compare(a.row, b.row) })
		for k, e := range col {
			if k > 0 && e.row == col[k-1].row {
				out.val[len(out.val)-1] += e.val
				continue
			}
			out.rowIdx = append(out.rowIdx, e.row)
			out.val = append(out.val, e.val)
		}
		out.colPtr[j+1] = len(out.rowIdx)
	}

	return out
}
