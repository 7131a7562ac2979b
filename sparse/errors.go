// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Two categories: ErrNumerical for failures of the factorization or solve, and
// ErrInvalidInput for contract violations caught before any computation.
// Specific sentinels wrap their category, so errors.Is matches both.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNumerical is the category of numerical failures.
	ErrNumerical = errors.New("sparse: numerical failure")

	// ErrNotPositiveDefinite indicates a non-positive or non-finite pivot.
	ErrNotPositiveDefinite = fmt.Errorf("%w: matrix is not positive definite", ErrNumerical)

	// ErrSolveFailed indicates the substitution produced a non-finite value.
	ErrSolveFailed = fmt.Errorf("%w: solve produced non-finite values", ErrNumerical)
)

var (
	// ErrInvalidInput is the category of contract violations.
	ErrInvalidInput = errors.New("sparse: invalid input")

	// ErrShape indicates non-positive dimensions, or a non-square matrix where a
	// square one is required.
	ErrShape = fmt.Errorf("%w: invalid shape", ErrInvalidInput)

	// ErrIndexOutOfRange indicates a triplet outside [0,rows)×[0,cols).
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidInput)

	// ErrRHSLength indicates a right-hand side whose length differs from the order of A.
	ErrRHSLength = fmt.Errorf("%w: right-hand side length mismatch", ErrInvalidInput)

	// ErrResultLength indicates a result buffer shorter than the right-hand side.
	ErrResultLength = fmt.Errorf("%w: result buffer too short", ErrInvalidInput)

	// ErrNilMatrix indicates a nil *Matrix or *Cholesky.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)
)

// Operation tags for error context.
const (
	opNewMatrix      = "NewMatrix"
	opAdd            = "Matrix.Add"
	opFromTriplets   = "FromTriplets"
	opFactorize      = "Factorize"
	opSolve          = "Cholesky.Solve"
	opSolveMany      = "Cholesky.SolveMany"
	opSolveSPD       = "SolveSPD"
	opSolveSPDMatrix = "SolveSPDMatrix"
)

// sparseErrorf wraps err with an operation tag. err must be non-nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
