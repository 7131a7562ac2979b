// SPDX-License-Identifier: MIT
// Package sparse: dense reference backend on gonum.

package sparse

import (
	"gonum.org/v1/gonum/mat"
)

// denseFactor wraps a gonum Cholesky factorization.
type denseFactor struct {
	n  int
	ch mat.Cholesky
}

// factorDense expands the upper triangle of a into a dense symmetric matrix
// and factorizes it.
// Errors: ErrNotPositiveDefinite.
func factorDense(a csc) (*denseFactor, error) {
	sym := mat.NewSymDense(a.n, nil)
	for j := 0; j < a.n; j++ {
		for p := a.colPtr[j]; p < a.colPtr[j+1]; p++ {
			sym.SetSym(a.rowIdx[p], j, a.val[p])
		}
	}
	d := &denseFactor{n: a.n}
	if ok := d.ch.Factorize(sym); !ok {
		return nil, ErrNotPositiveDefinite
	}

	return d, nil
}

// solveInPlace solves with the gonum factor. A mat.Condition warning is not an
// error here; Solve rejects non-finite results afterwards.
func (d *denseFactor) solveInPlace(b []float64) {
	x := mat.NewVecDense(d.n, b)
	_ = d.ch.SolveVecTo(x, mat.NewVecDense(d.n, append([]float64(nil), b...)))
}
