// SPDX-License-Identifier: MIT
// Package session: sentinel error set.

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInputContract is the category of host buffer contract violations.
	ErrInputContract = errors.New("session: input contract violated")

	// ErrVertexBuffer indicates a vertex buffer whose length is not a multiple
	// of 3, or differs from 3·NumVertices() on output.
	ErrVertexBuffer = fmt.Errorf("%w: vertex buffer length", ErrInputContract)

	// ErrIndexBuffer indicates an index buffer whose length is not a multiple
	// of 3, or differs from NumIndices() on output.
	ErrIndexBuffer = fmt.Errorf("%w: index buffer length", ErrInputContract)

	// ErrNoMesh indicates an operation that needs a mesh before SetMesh succeeded.
	ErrNoMesh = errors.New("session: no mesh set")

	// ErrInvalidConfig indicates New was given a configuration that fails validation.
	ErrInvalidConfig = errors.New("session: invalid configuration")
)

const (
	opNew       = "session.New"
	opSetMesh   = "Session.SetMesh"
	opProcess   = "Session.Process"
	opWriteMesh = "Session.WriteMesh"
)
