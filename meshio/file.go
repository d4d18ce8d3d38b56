// SPDX-License-Identifier: MIT

package meshio

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/hexsphere/mesh"
)

// WriteFile creates (or truncates) path and writes p in the given format.
// A partially written file is left in place on error.
//
// Errors:
//   - ErrIO if the file cannot be created, written or closed.
//   - ErrMalformedInput if p fails Validate.
func WriteFile(path string, p *mesh.Polyhedron, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErr("WriteFile", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErr("WriteFile", cerr)
		}
	}()

	switch format {
	case Bin:
		err = WriteBinary(f, p)
	case JSON:
		err = WriteJSON(f, p)
	default:
		err = fmt.Errorf("WriteFile: format %d: %w", int(format), ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}

	return nil
}

// ReadFile reads a mesh written by WriteFile. withColors is only consulted for Bin.
//
// Errors:
//   - ErrIO if the file cannot be opened or read.
//   - ErrMalformedInput if its contents do not decode to a valid mesh.
func ReadFile(path string, format Format, withColors bool) (p *mesh.Polyhedron, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr("ReadFile", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErr("ReadFile", cerr)
		}
	}()

	switch format {
	case Bin:
		p, err = ReadBinary(f, withColors)
	case JSON:
		p, err = ReadJSON(f)
	default:
		err = fmt.Errorf("ReadFile: format %d: %w", int(format), ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return p, nil
}

// IsDir reports whether path exists and is a directory. The error distinguishes
// a missing path from one that is not a directory.
func IsDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("directory %q doesn't exist: %w", path, ErrIO)
	case err != nil:
		return ioErr("IsDir", err)
	case !info.IsDir():
		return fmt.Errorf("output %q is not a directory: %w", path, ErrIO)
	}

	return nil
}
