// SPDX-License-Identifier: MIT
// Package sparse: simplicial up-looking Cholesky factorization.

package sparse

import (
	"fmt"
	"math"
)

// none marks a missing parent in the elimination tree.
const none = -1

// lfactor is a lower-triangular factor L in compressed-column form. The
// diagonal is the first entry of each column.
type lfactor struct {
	n      int
	colPtr []int
	rowIdx []int
	val    []float64
}

// etree computes the elimination tree of a from its upper triangle.
// Complexity: O(nnz·α(n)) with path compression through ancestor.
func etree(a csc) []int {
	parent := make([]int, a.n)
	ancestor := make([]int, a.n)
	for k := 0; k < a.n; k++ {
		parent[k] = none
		ancestor[k] = none
		for p := a.colPtr[k]; p < a.colPtr[k+1]; p++ {
			for i := a.rowIdx[p]; i != none && i < k; {
				inext := ancestor[i]
				ancestor[i] = k
				if inext == none {
					parent[i] = k
				}
				i = inext
			}
		}
	}

	return parent
}

// reach writes the nonzero pattern of row k of L (columns < k) into
// stack[top:] in topological order and returns top. Each path up the tree is
// first pushed at the bottom of stack, then moved to the top segment; the two
// never overlap since every column is visited once.
func reach(a csc, k int, parent, mark, stack []int) int {
	top := a.n
	mark[k] = k
	for p := a.colPtr[k]; p < a.colPtr[k+1]; p++ {
		i := a.rowIdx[p]
		if i > k {
			continue
		}
		n := 0
		for ; mark[i] != k; i = parent[i] {
			stack[n] = i
			n++
			mark[i] = k
		}
		for n > 0 {
			top--
			n--
			stack[top] = stack[n]
		}
	}

	return top
}

// factorLLT computes L with A = L·Lᵀ.
//
// Implementation:
//   - Stage 1 (Symbolic): elimination tree, then the row patterns of L give
//     each column count, so L is allocated exactly once.
//   - Stage 2 (Numeric): for each row k, scatter column k of A, solve the
//     triangular system L(0:k,0:k)·x = A(0:k,k) over the row pattern, and
//     append x as row k of L with pivot sqrt(d).
//
// Errors: ErrNotPositiveDefinite when a pivot d is not > 0 (NaN included).
func factorLLT(a csc) (*lfactor, error) {
	n := a.n
	parent := etree(a)
	mark := make([]int, n)
	stack := make([]int, n)

	for i := range mark {
		mark[i] = none
	}
	counts := make([]int, n)
	for k := 0; k < n; k++ {
		counts[k]++ // diagonal
		for _, j := range stack[reach(a, k, parent, mark, stack):] {
			counts[j]++
		}
	}

	l := &lfactor{n: n, colPtr: make([]int, n+1)}
	for j := 0; j < n; j++ {
		l.colPtr[j+1] = l.colPtr[j] + counts[j]
	}
	l.rowIdx = make([]int, l.colPtr[n])
	l.val = make([]float64, l.colPtr[n])

	next := make([]int, n)
	copy(next, l.colPtr[:n])
	x := make([]float64, n)
	for i := range mark {
		mark[i] = none
	}

	for k := 0; k < n; k++ {
		top := reach(a, k, parent, mark, stack)
		x[k] = 0
		for p := a.colPtr[k]; p < a.colPtr[k+1]; p++ {
			if i := a.rowIdx[p]; i <= k {
				x[i] = a.val[p]
			}
		}
		d := x[k]
		x[k] = 0
		for _, i := range stack[top:] {
			lki := x[i] / l.val[l.colPtr[i]]
			x[i] = 0
			for p := l.colPtr[i] + 1; p < next[i]; p++ {
				x[l.rowIdx[p]] -= l.val[p] * lki
			}
			d -= lki * lki
			p := next[i]
			next[i]++
			l.rowIdx[p] = k
			l.val[p] = lki
		}
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("pivot %d = %v: %w", k, d, ErrNotPositiveDefinite)
		}
		p := next[k]
		next[k]++
		l.rowIdx[p] = k
		l.val[p] = math.Sqrt(d)
	}

	return l, nil
}

// solveInPlace overwrites x with A⁻¹·x: L·y = x, then Lᵀ·x = y.
func (l *lfactor) solveInPlace(x []float64) {
	for j := 0; j < l.n; j++ {
		x[j] /= l.val[l.colPtr[j]]
		for p := l.colPtr[j] + 1; p < l.colPtr[j+1]; p++ {
			x[l.rowIdx[p]] -= l.val[p] * x[j]
		}
	}
	for j := l.n - 1; j >= 0; j-- {
		for p := l.colPtr[j] + 1; p < l.colPtr[j+1]; p++ {
			x[j] -= l.val[p] * x[l.rowIdx[p]]
		}
		x[j] /= l.val[l.colPtr[j]]
	}
}

// nnz returns the stored entries of L.
func (l *lfactor) nnz() int { return l.colPtr[l.n] }
