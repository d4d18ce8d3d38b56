// SPDX-License-Identifier: MIT

package mesh

import "errors"

// Sentinel errors for mesh operations. Callers branch with errors.Is; context
// (indices, lengths) is attached with %w at the failure site.
var (
	// ErrIndexOutOfRange indicates a triangle corner outside Positions or a face
	// entry outside Cells.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrNoFaces indicates a face-based pass on a mesh whose Faces are empty.
	ErrNoFaces = errors.New("mesh: polyhedron has no faces")

	// ErrLengthMismatch indicates Normals or Colors do not have one entry per position.
	ErrLengthMismatch = errors.New("mesh: attribute length mismatch")
)
