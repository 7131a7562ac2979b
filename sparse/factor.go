// SPDX-License-Identifier: MIT
// Package sparse: Factorize / Solve facade over the backends.

package sparse

import (
	"fmt"
	"math"
)

// kernel is one backend's factor.
type kernel interface {
	// solveInPlace overwrites b with A⁻¹·b.
	solveInPlace(b []float64)
}

// Cholesky is the factorization of a symmetric positive-definite matrix.
// It is immutable and safe for concurrent Solve calls.
type Cholesky struct {
	n       int
	backend Backend
	k       kernel
	nnz     int
}

// Factorize computes the Cholesky factorization of the symmetric matrix whose
// lower triangle is stored in m.
//
// Implementation:
//   - Stage 1: validate m is non-nil and square.
//   - Stage 2: compress the lower triangle (duplicates summed).
//   - Stage 3: factorize with the selected backend.
//
// Errors: ErrNilMatrix, ErrShape, ErrNotPositiveDefinite.
func Factorize(m *Matrix, opts ...Option) (*Cholesky, error) {
	if m == nil {
		return nil, sparseErrorf(opFactorize, ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFactorize, m.rows, m.cols, ErrShape)
	}
	cfg := gatherOptions(opts...)
	a := upperFromLower(m.rows, m.ts)

	c := &Cholesky{n: m.rows, backend: cfg.backend}
	switch cfg.backend {
	case DenseBackend:
		d, err := factorDense(a)
		if err != nil {
			return nil, sparseErrorf(opFactorize, err)
		}
		c.k, c.nnz = d, a.n*(a.n+1)/2
	default:
		l, err := factorLLT(a)
		if err != nil {
			return nil, sparseErrorf(opFactorize, err)
		}
		c.k, c.nnz = l, l.nnz()
	}

	return c, nil
}

// Size returns the order n of the factorized matrix.
func (c *Cholesky) Size() int { return c.n }

// Backend returns the backend that produced c.
func (c *Cholesky) Backend() Backend { return c.backend }

// FactorNNZ returns the number of stored entries of L (n(n+1)/2 for the dense backend).
func (c *Cholesky) FactorNNZ() int { return c.nnz }

// Solve returns x with A·x = b. b is not modified.
// Errors: ErrNilMatrix, ErrRHSLength, ErrSolveFailed.
func (c *Cholesky) Solve(b []float64) ([]float64, error) {
	if c == nil {
		return nil, sparseErrorf(opSolve, ErrNilMatrix)
	}
	if len(b) != c.n {
		return nil, fmt.Errorf("%s: len %d, want %d: %w", opSolve, len(b), c.n, ErrRHSLength)
	}
	x := append(make([]float64, 0, c.n), b...)
	c.k.solveInPlace(x)
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: x[%d] = %v: %w", opSolve, i, v, ErrSolveFailed)
		}
	}

	return x, nil
}

// SolveSPD factorizes the rows×cols matrix given by ts and solves it for rhs.
// Errors: any from FromTriplets, Factorize or Solve.
func SolveSPD(rows, cols int, ts []Triplet, rhs []float64) ([]float64, error) {
	m, err := FromTriplets(rows, cols, ts)
	if err != nil {
		return nil, sparseErrorf(opSolveSPD, err)
	}
	c, err := Factorize(m)
	if err != nil {
		return nil, sparseErrorf(opSolveSPD, err)
	}
	x, err := c.Solve(rhs)
	if err != nil {
		return nil, sparseErrorf(opSolveSPD, err)
	}

	return x, nil
}
