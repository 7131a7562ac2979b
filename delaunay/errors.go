// SPDX-License-Identifier: MIT
package delaunay

import "errors"

// ErrNilMesh indicates a nil mesh was passed to Optimize.
var ErrNilMesh = errors.New("delaunay: mesh is nil")
