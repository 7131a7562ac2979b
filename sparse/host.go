// SPDX-License-Identifier: MIT
// Package sparse: host entry point with status codes.

package sparse

import (
	"errors"
	"fmt"
	"math"
)

// Status is the integer result of SolveSPDMatrix.
type Status int

// Status codes. 0..2 match the skinning host; 3 reports contract violations
// detected before any computation.
const (
	StatusOK                  Status = 0
	StatusDecompositionFailed Status = 1
	StatusSolveFailed         Status = 2
	StatusInvalidInput        Status = 3
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDecompositionFailed:
		return "decomposition failed"
	case StatusSolveFailed:
		return "solve failed"
	case StatusInvalidInput:
		return "invalid input"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// HostTriplet is a single-precision (row, col, value) entry in the host's
// sequential layout.
type HostTriplet struct {
	Row   int32
	Col   int32
	Value float32
}

// StatusOf maps an error from this package to its Status.
// nil → StatusOK; ErrNotPositiveDefinite → 1; ErrSolveFailed → 2;
// ErrInvalidInput and anything unrecognized → 3.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNotPositiveDefinite):
		return StatusDecompositionFailed
	case errors.Is(err, ErrSolveFailed):
		return StatusSolveFailed
	default:
		return StatusInvalidInput
	}
}

// SolveSPDMatrix solves A·x = rhs for the rows×cols matrix whose lower triangle
// is given by triplets and writes x into result[:len(rhs)].
//
// Contract:
//   - rows == cols > 0, every triplet in range, len(rhs) == rows and
//     len(result) >= len(rhs); otherwise StatusInvalidInput.
//   - result is written only when the status is StatusOK. The solve runs in
//     float64 and is narrowed to float32 on output; a value that overflows
//     float32 is reported as StatusSolveFailed.
func SolveSPDMatrix(rows, cols int, triplets []HostTriplet, rhs, result []float32) Status {
	if err := checkHostBuffers(rows, cols, rhs, result); err != nil {
		return StatusOf(err)
	}

	m, err := NewMatrix(rows, cols)
	if err != nil {
		return StatusOf(err)
	}
	for _, t := range triplets {
		if err := m.Add(int(t.Row), int(t.Col), float64(t.Value)); err != nil {
			return StatusOf(err)
		}
	}
	b := make([]float64, len(rhs))
	for i, v := range rhs {
		b[i] = float64(v)
	}

	c, err := Factorize(m)
	if err != nil {
		return StatusOf(err)
	}
	x, err := c.Solve(b)
	if err != nil {
		return StatusOf(err)
	}
	for _, v := range x {
		if math.IsInf(float64(float32(v)), 0) {
			return StatusSolveFailed
		}
	}
	for i, v := range x {
		result[i] = float32(v)
	}

	return StatusOK
}

// checkHostBuffers validates the shape and buffer lengths of a host call.
// Errors: ErrShape, ErrRHSLength, ErrResultLength.
func checkHostBuffers(rows, cols int, rhs, result []float32) error {
	if rows <= 0 || rows != cols {
		return fmt.Errorf("%s: %dx%d: %w", opSolveSPDMatrix, rows, cols, ErrShape)
	}
	if len(rhs) != rows {
		return fmt.Errorf("%s: len %d, want %d: %w", opSolveSPDMatrix, len(rhs), rows, ErrRHSLength)
	}
	if len(result) < len(rhs) {
		return fmt.Errorf("%s: len %d, want >= %d: %w", opSolveSPDMatrix, len(result), len(rhs), ErrResultLength)
	}

	return nil
}
