// SPDX-License-Identifier: MIT
// Package: hexsphere/geodesic
//
// base.go - canonical data of the base icosahedron.
//
// Design:
//   • Single source of truth for the 12 vertices and 20 faces every geodesic
//     sphere is grown from.
//   • Vertices are the three orthogonal golden rectangles (±1, ±t, 0),
//     (0, ±1, ±t), (±t, 0, ±1); they are NOT normalized, |v| = sqrt(1+t²).
//   • Faces are listed counter-clockwise seen from outside.
//
// Never reorder either table: vertex and face order drive the welding order and
// therefore the index layout of every generated mesh.

package geodesic

import (
	"math"

	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/hexsphere/mesh"
)

// Golden is the golden ratio t = (1+√5)/2 in float32.
var Golden = float32((1 + math.Sqrt(5)) / 2)

// BaseVertexCount and BaseFaceCount describe the regular icosahedron.
const (
	BaseVertexCount = 12
	BaseFaceCount   = 20
)

// baseVertices lists the icosahedron corners in canonical order.
var baseVertices = [BaseVertexCount]vec3.T{
	{-1, Golden, 0},  // 0
	{1, Golden, 0},   // 1
	{-1, -Golden, 0}, // 2
	{1, -Golden, 0},  // 3
	{0, -1, Golden},  // 4
	{0, 1, Golden},   // 5
	{0, -1, -Golden}, // 6
	{0, 1, -Golden},  // 7
	{Golden, 0, -1},  // 8
	{Golden, 0, 1},   // 9
	{-Golden, 0, -1}, // 10
	{-Golden, 0, 1},  // 11
}

// baseFaces lists the icosahedron faces, outward winding.
var baseFaces = [BaseFaceCount]mesh.Triangle{
	// five faces around vertex 0
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	// five adjacent faces
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	// five faces around vertex 3
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	// five adjacent faces
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// BaseIcosahedron returns a fresh copy of the canonical icosahedron. Positions
// pass through a PositionStore like any other generated mesh, so normal slots
// are allocated; normals themselves are left zero.
// Complexity: O(1).
func BaseIcosahedron() *mesh.Polyhedron {
	p := mesh.New()
	s := mesh.NewPositionStore(p, mesh.WeldPrecision)
	for _, v := range baseVertices {
		s.Add(v)
	}
	p.Cells = append(p.Cells, baseFaces[:]...)

	return p
}
