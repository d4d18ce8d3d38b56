// SPDX-License-Identifier: MIT

package meshio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/hexsphere/mesh"
)

// WriteJSON encodes p as a single JSON object followed by a newline. Float32
// components are printed in their shortest round-tripping form.
//
// Errors:
//   - ErrMalformedInput if p fails Validate.
//   - ErrIO if w fails.
func WriteJSON(w io.Writer, p *mesh.Polyhedron) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("WriteJSON: %w: %w", ErrMalformedInput, err)
	}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		return ioErr("WriteJSON", err)
	}

	return nil
}

// ReadJSON decodes one mesh object from r and validates it. An object without
// a "normals" field gets one zero normal per position; an explicit array must
// still match the positions.
//
// Errors:
//   - ErrIO if r fails.
//   - ErrMalformedInput for anything else: bad syntax, wrong value types,
//     unknown fields, inconsistent contents.
func ReadJSON(r io.Reader) (*mesh.Polyhedron, error) {
	src := &recordingReader{r: r}
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()

	p := mesh.New()
	p.Normals = nil
	if err := dec.Decode(p); err != nil {
		if src.err != nil {
			return nil, ioErr("ReadJSON", src.err)
		}
		return nil, fmt.Errorf("ReadJSON: %w: %w", ErrMalformedInput, err)
	}
	if p.Normals == nil {
		p.Normals = make([]vec3.T, len(p.Positions))
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("ReadJSON: %w: %w", ErrMalformedInput, err)
	}

	return p, nil
}

// recordingReader remembers the first non-EOF error of r, separating stream
// failures from decoding failures.
type recordingReader struct {
	r   io.Reader
	err error
}

func (rr *recordingReader) Read(b []byte) (int, error) {
	n, err := rr.r.Read(b)
	if err != nil && !errors.Is(err, io.EOF) && rr.err == nil {
		rr.err = err
	}

	return n, err
}
