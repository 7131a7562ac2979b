// SPDX-License-Identifier: MIT
// Package sparse: coordinate-format matrix.

package sparse

import "fmt"

// Triplet is one (row, col, value) entry of a coordinate-format matrix.
type Triplet struct {
	Row   int
	Col   int
	Value float64
}

// Matrix is a rows×cols matrix accumulated as triplets. Entries are kept in
// insertion order; duplicates are summed when the matrix is compressed.
type Matrix struct {
	rows, cols int
	ts         []Triplet
}

// NewMatrix returns an empty rows×cols matrix.
// Errors: ErrShape if rows <= 0 or cols <= 0.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opNewMatrix, rows, cols, ErrShape)
	}

	return &Matrix{rows: rows, cols: cols}, nil
}

// FromTriplets builds a rows×cols matrix from ts. The slice is copied.
// Errors: ErrShape, ErrIndexOutOfRange (the first offending triplet).
func FromTriplets(rows, cols int, ts []Triplet) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opFromTriplets, err)
	}
	for i, t := range ts {
		if !m.inRange(t.Row, t.Col) {
			return nil, fmt.Errorf("%s: triplet %d (%d,%d): %w", opFromTriplets, i, t.Row, t.Col, ErrIndexOutOfRange)
		}
	}
	m.ts = append(make([]Triplet, 0, len(ts)), ts...)

	return m, nil
}

// Add appends the entry (row, col, v).
// Errors: ErrIndexOutOfRange.
func (m *Matrix) Add(row, col int, v float64) error {
	if !m.inRange(row, col) {
		return fmt.Errorf("%s: (%d,%d): %w", opAdd, row, col, ErrIndexOutOfRange)
	}
	m.ts = append(m.ts, Triplet{Row: row, Col: col, Value: v})

	return nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Len returns the number of stored triplets, duplicates included.
func (m *Matrix) Len() int { return len(m.ts) }

// Triplets returns a copy of the stored triplets in insertion order.
func (m *Matrix) Triplets() []Triplet {
	return append([]Triplet(nil), m.ts...)
}

func (m *Matrix) inRange(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}
