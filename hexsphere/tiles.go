// SPDX-License-Identifier: MIT

package hexsphere

import (
	"github.com/golang/geo/s2"
	"github.com/ungerik/go3d/vec3"
)

// Tile describes one polygon of the dual mesh.
type Tile struct {
	// Vertex is the source vertex the polygon replaces; it is also the tile index.
	Vertex int

	// Center is the polygon centre (mean of the incident source centroids).
	Center vec3.T

	// Sides is 5 for a pentagon, 6 for a hexagon.
	Sides int

	// Neighbors lists the adjacent tiles, counter-clockwise seen from outside.
	// When the source ring cannot be walked (inconsistent winding) the order is
	// that of the incident triangles.
	Neighbors []int

	// LatLng is the direction of Center on the unit sphere.
	LatLng s2.LatLng
}

// IsPentagon reports whether the tile has five sides.
func (t Tile) IsPentagon() bool { return t.Sides == 5 }

// tile assembles the catalog entry of v. Called after polygon succeeded, so
// every incident triangle is known to contain v exactly once.
func (b *dualBuilder) tile(v int, faces []int) Tile {
	center := b.topo.CenterOf(faces)

	return Tile{
		Vertex:    v,
		Center:    center,
		Sides:     len(faces),
		Neighbors: b.ring(v, faces),
		LatLng:    s2.LatLngFromPoint(s2.PointFromCoords(float64(center[0]), float64(center[1]), float64(center[2]))),
	}
}

// ring orders the neighbours of v counter-clockwise. Within each incident
// triangle q follows v and p precedes it, so walking q → p from triangle to
// triangle circles v once.
func (b *dualBuilder) ring(v int, faces []int) []int {
	next := make(map[int]int, len(faces))
	unordered := make([]int, 0, len(faces))
	for _, f := range faces {
		p, q, _ := spokes(b.src.Cells[f], v)
		next[q] = p
		unordered = append(unordered, q)
	}
	if len(next) != len(faces) {
		return unordered
	}

	ordered := make([]int, 0, len(faces))
	cur := unordered[0]
	for range faces {
		ordered = append(ordered, cur)
		nxt, ok := next[cur]
		if !ok {
			return unordered
		}
		cur = nxt
	}
	if cur != unordered[0] {
		return unordered
	}

	return ordered
}
