// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/vec3"
)

// outwardNormal returns the unnormalized normal (a-b)×(c-b) of a triangle,
// negated if needed so that it points away from the origin as seen from b.
// The mesh is assumed star-shaped around the origin.
func outwardNormal(a, b, c *vec3.T) vec3.T {
	e1 := vec3.Sub(a, b)
	e2 := vec3.Sub(c, b)
	n := vec3.Cross(&e1, &e2)

	// detect and correct inverted normal
	if vec3.Dot(&n, b) < 0 {
		n.Invert()
	}

	return n
}

// ComputeTriangleNormals replaces Normals with smooth per-vertex normals.
//
// Implementation:
//   - Stage 1: reset every slot to zero (one slot per position).
//   - Stage 2: for every triangle, accumulate its outward, unnormalized normal
//     into its three corners (larger triangles weigh more).
//   - Stage 3: normalize every slot.
//
// Complexity: O(V + T).
func (p *Polyhedron) ComputeTriangleNormals() {
	p.resetNormals()

	for i := range p.Cells {
		a, b, c := p.Corners(i)
		n := outwardNormal(&a, &b, &c)
		for _, v := range p.Cells[i] {
			p.Normals[v].Add(&n)
		}
	}

	p.normalizeNormals()
}

// ComputeFaceNormals replaces Normals with flat per-polygon normals: the outward
// normal of each face's first triangle is accumulated into every corner of every
// triangle of that face, then all slots are normalized. Vertices shared by several
// faces receive the normalized sum.
//
// Errors:
//   - ErrNoFaces when the mesh carries no face grouping.
//   - ErrIndexOutOfRange when a face is empty or references a missing triangle.
//
// Complexity: O(V + Σ|face|).
func (p *Polyhedron) ComputeFaceNormals() error {
	if !p.HasFaces() {
		return fmt.Errorf("ComputeFaceNormals: %w", ErrNoFaces)
	}
	for i, f := range p.Faces {
		if len(f) == 0 {
			return fmt.Errorf("ComputeFaceNormals: face %d is empty: %w", i, ErrIndexOutOfRange)
		}
		for _, c := range f {
			if c < 0 || c >= len(p.Cells) {
				return fmt.Errorf("ComputeFaceNormals: face %d cell %d: %w", i, c, ErrIndexOutOfRange)
			}
		}
	}

	p.resetNormals()

	for _, f := range p.Faces {
		a, b, c := p.Corners(f[0])
		n := outwardNormal(&a, &b, &c)
		for _, cell := range f {
			for _, v := range p.Cells[cell] {
				p.Normals[v].Add(&n)
			}
		}
	}

	p.normalizeNormals()

	return nil
}

func (p *Polyhedron) resetNormals() {
	if len(p.Normals) != len(p.Positions) {
		p.Normals = make([]vec3.T, len(p.Positions))
		return
	}
	for i := range p.Normals {
		p.Normals[i] = vec3.Zero
	}
}

func (p *Polyhedron) normalizeNormals() {
	for i := range p.Normals {
		p.Normals[i].Normalize()
	}
}
