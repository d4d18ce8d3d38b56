// SPDX-License-Identifier: MIT

package meshio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/hexsphere/mesh"
)

var byteorder = binary.LittleEndian

// chunk bounds the number of elements decoded per read, so that a corrupt
// header cannot force a huge allocation before the data runs out.
const chunk = 1 << 14

// WriteBinary encodes p in the binary layout. Colours are written when p has them.
//
// Errors:
//   - ErrMalformedInput if p fails Validate or a count does not fit a u32.
//   - ErrIO if w fails.
//
// Complexity: O(V + T).
func WriteBinary(w io.Writer, p *mesh.Polyhedron) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("WriteBinary: %w: %w", ErrMalformedInput, err)
	}
	if uint64(len(p.Positions)) > math.MaxUint32 || uint64(len(p.Cells)) > math.MaxUint32 {
		return fmt.Errorf("WriteBinary: %d positions, %d cells exceed u32: %w",
			len(p.Positions), len(p.Cells), ErrMalformedInput)
	}

	bw := bufio.NewWriter(w)
	header := [2]uint32{uint32(len(p.Positions)), uint32(len(p.Cells))}
	if err := binary.Write(bw, byteorder, header); err != nil {
		return ioErr("WriteBinary", err)
	}
	if err := binary.Write(bw, byteorder, p.Positions); err != nil {
		return ioErr("WriteBinary", err)
	}
	if err := binary.Write(bw, byteorder, p.Normals); err != nil {
		return ioErr("WriteBinary", err)
	}
	if p.HasColors() {
		if err := binary.Write(bw, byteorder, p.Colors); err != nil {
			return ioErr("WriteBinary", err)
		}
	}

	cells := make([][3]uint32, 0, min(len(p.Cells), chunk))
	for start := 0; start < len(p.Cells); start += chunk {
		cells = cells[:0]
		for _, t := range p.Cells[start:min(start+chunk, len(p.Cells))] {
			cells = append(cells, [3]uint32{uint32(t[0]), uint32(t[1]), uint32(t[2])})
		}
		if err := binary.Write(bw, byteorder, cells); err != nil {
			return ioErr("WriteBinary", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return ioErr("WriteBinary", err)
	}

	return nil
}

// ReadBinary decodes a mesh written by WriteBinary. withColors must match
// whether the writer had colours; the format cannot tell. The result has no faces.
//
// Errors:
//   - ErrMalformedInput if the stream is truncated, has trailing bytes, or a
//     cell references a missing position.
//   - ErrIO if r fails.
//
// Complexity: O(V + T).
func ReadBinary(r io.Reader, withColors bool) (*mesh.Polyhedron, error) {
	br := bufio.NewReader(r)

	var header [2]uint32
	if err := binary.Read(br, byteorder, &header); err != nil {
		return nil, readErr("ReadBinary: header", err)
	}
	nv, nt := int(header[0]), int(header[1])

	p := mesh.New()
	var err error
	if p.Positions, err = readVectors(br, nv); err != nil {
		return nil, readErr("ReadBinary: positions", err)
	}
	if p.Normals, err = readVectors(br, nv); err != nil {
		return nil, readErr("ReadBinary: normals", err)
	}
	if withColors {
		if p.Colors, err = readVectors(br, nv); err != nil {
			return nil, readErr("ReadBinary: colors", err)
		}
	}
	if p.Cells, err = readCells(br, nt); err != nil {
		return nil, readErr("ReadBinary: cells", err)
	}

	if _, err := br.ReadByte(); err == nil {
		return nil, fmt.Errorf("ReadBinary: trailing data after %d cells: %w", nt, ErrMalformedInput)
	} else if !errors.Is(err, io.EOF) {
		return nil, ioErr("ReadBinary", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("ReadBinary: %w: %w", ErrMalformedInput, err)
	}

	return p, nil
}

func readVectors(r io.Reader, n int) ([]vec3.T, error) {
	out := make([]vec3.T, 0, min(n, chunk))
	buf := make([]vec3.T, min(n, chunk))
	for len(out) < n {
		b := buf[:min(n-len(out), chunk)]
		if err := binary.Read(r, byteorder, b); err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	return out, nil
}

func readCells(r io.Reader, n int) ([]mesh.Triangle, error) {
	out := make([]mesh.Triangle, 0, min(n, chunk))
	buf := make([][3]uint32, min(n, chunk))
	for len(out) < n {
		b := buf[:min(n-len(out), chunk)]
		if err := binary.Read(r, byteorder, b); err != nil {
			return nil, err
		}
		for _, c := range b {
			out = append(out, mesh.Triangle{int(c[0]), int(c[1]), int(c[2])})
		}
	}

	return out, nil
}

func ioErr(method string, err error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrIO, err)
}

// readErr classifies a decoding failure: running out of data is malformed
// input, anything else comes from the reader.
func readErr(method string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: truncated: %w", method, ErrMalformedInput)
	}
	return ioErr(method, err)
}
