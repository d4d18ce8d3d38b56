// SPDX-License-Identifier: MIT

package meshio

import "errors"

var (
	// ErrIO indicates a failure of the underlying stream or file system.
	ErrIO = errors.New("meshio: i/o failure")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("meshio: unknown format")

	// ErrMalformedInput indicates that decoded data does not describe a valid mesh.
	ErrMalformedInput = errors.New("meshio: malformed input")
)
