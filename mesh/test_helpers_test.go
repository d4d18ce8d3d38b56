// SPDX-License-Identifier: MIT

package mesh_test

import (
	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/hexsphere/mesh"
)

// eps is the absolute tolerance used for float32 geometry checks.
const eps = 1e-5

// octahedron returns the unit octahedron with outward (counter-clockwise) winding.
//
//	0:+X 1:-X 2:+Y 3:-Y 4:+Z 5:-Z
//
// Cells 0..3 surround +Z, cells 4..7 surround -Z.
func octahedron() *mesh.Polyhedron {
	p := mesh.New()
	s := mesh.NewPositionStore(p, 0)
	for _, v := range []vec3.T{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	} {
		s.Add(v)
	}
	p.Cells = []mesh.Triangle{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}

	return p
}

// length returns |v| as float64 for assert.InDelta.
func length(v vec3.T) float64 { return float64(v.Length()) }
