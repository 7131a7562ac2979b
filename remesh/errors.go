// SPDX-License-Identifier: MIT
// Package remesh: sentinel error set.

package remesh

import "errors"

var (
	// ErrNilMesh indicates a nil mesh argument.
	ErrNilMesh = errors.New("remesh: mesh is nil")

	// ErrInvalidParams indicates a non-positive or non-finite target edge
	// length, or a negative iteration count.
	ErrInvalidParams = errors.New("remesh: invalid parameters")
)

const (
	opRemesh      = "Uniform.Remesh"
	opTriangulate = "FaceTriangulator.Triangulate"
)
