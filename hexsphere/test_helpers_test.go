// SPDX-License-Identifier: MIT

package hexsphere_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/hexsphere/mesh"
)

// tol is the absolute tolerance for float32 magnitudes.
const tol = 1e-4

// edge is a directed mesh edge.
type edge struct{ u, v int }

// requireClosedOriented fails unless every directed edge appears exactly once and
// its reverse exists.
func requireClosedOriented(t *testing.T, p *mesh.Polyhedron) {
	t.Helper()
	seen := make(map[edge]int, 3*len(p.Cells))
	for _, c := range p.Cells {
		for k := 0; k < 3; k++ {
			seen[edge{c[k], c[(k+1)%3]}]++
		}
	}
	for e, n := range seen {
		require.Equal(t, 1, n, "directed edge %v used %d times", e, n)
		require.Equal(t, 1, seen[edge{e.v, e.u}], "edge %v has no opposite", e)
	}
}

// requireOutward fails unless every triangle's geometric normal points away from
// the origin.
func requireOutward(t *testing.T, p *mesh.Polyhedron) {
	t.Helper()
	for i := range p.Cells {
		a, b, c := p.Corners(i)
		ab := vec3.Sub(&b, &a)
		ac := vec3.Sub(&c, &a)
		n := vec3.Cross(&ab, &ac)
		centroid := mesh.Centroid(&a, &b, &c)
		require.Greater(t, vec3.Dot(&n, &centroid), float32(0), "cell %d is wound inward", i)
	}
}

// canonical rotates a triangle so that its smallest index comes first.
func canonical(t mesh.Triangle) mesh.Triangle {
	switch {
	case t[1] < t[0] && t[1] < t[2]:
		return mesh.Triangle{t[1], t[2], t[0]}
	case t[2] < t[0] && t[2] < t[1]:
		return mesh.Triangle{t[2], t[0], t[1]}
	default:
		return t
	}
}

// octahedron returns the unit octahedron, outward winding; every vertex has
// valence 4.
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
