// SPDX-License-Identifier: MIT

package mesh

import (
	"math/rand"

	"github.com/ungerik/go3d/vec3"
)

// UniqueVertices returns a copy of p in which every triangle owns three fresh
// vertices: positions, normals and colours are duplicated per corner and no
// index is shared between triangles. Faces keep their triangle indices, which
// are unchanged. This is the prerequisite for flat per-face colouring, since a
// shared vertex can carry only one colour.
// Complexity: O(T).
func (p *Polyhedron) UniqueVertices() *Polyhedron {
	out := &Polyhedron{
		Positions: make([]vec3.T, 0, 3*len(p.Cells)),
		Cells:     make([]Triangle, 0, len(p.Cells)),
		Normals:   make([]vec3.T, 0, 3*len(p.Cells)),
	}
	withNormals := len(p.Normals) == len(p.Positions)
	withColors := p.HasColors()

	for _, t := range p.Cells {
		var nt Triangle
		for k, v := range t {
			nt[k] = len(out.Positions)
			out.Positions = append(out.Positions, p.Positions[v])
			if withNormals {
				out.Normals = append(out.Normals, p.Normals[v])
			} else {
				out.Normals = append(out.Normals, vec3.Zero)
			}
			if withColors {
				out.Colors = append(out.Colors, p.Colors[v])
			}
		}
		out.Cells = append(out.Cells, nt)
	}

	if p.Faces != nil {
		out.Faces = make([][]int, len(p.Faces))
		for i, f := range p.Faces {
			out.Faces[i] = append([]int(nil), f...)
		}
	}

	return out
}

// AssignRandomFaceColors draws one colour per face (components in [0,1)) and
// writes it to every vertex of the face's triangles. Without faces every triangle
// is its own face. Vertices shared between faces keep the last colour written, so
// call UniqueVertices first for a clean flat look.
// The rng is required; a fixed seed gives reproducible colours.
// Complexity: O(V + T).
func (p *Polyhedron) AssignRandomFaceColors(rng *rand.Rand) {
	p.Colors = make([]vec3.T, len(p.Positions))

	paint := func(cell int, col vec3.T) {
		for _, v := range p.Cells[cell] {
			p.Colors[v] = col
		}
	}

	if !p.HasFaces() {
		for i := range p.Cells {
			paint(i, randomColor(rng))
		}
		return
	}
	for _, f := range p.Faces {
		col := randomColor(rng)
		for _, cell := range f {
			paint(cell, col)
		}
	}
}

func randomColor(rng *rand.Rand) vec3.T {
	return vec3.T{rng.Float32(), rng.Float32(), rng.Float32()}
}
