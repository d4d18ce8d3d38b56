// SPDX-License-Identifier: MIT

// Package geodesic builds geodesic icosahedra: the regular icosahedron whose 20
// faces are each split into a triangular lattice and projected onto a sphere.
//
// The package offers:
//
//   - BaseIcosahedron:  the canonical 12-vertex / 20-face solid (un-normalized).
//   - SubdivideTriangle: the lattice generator for a single base triangle.
//   - Subdivide:        SubdivideTriangle over every triangle of a source mesh.
//   - NewIcosahedron:   the validated entry point, radius + detail level.
//   - ValidateParams:   the same checks without building.
//
// Detail level d splits every base edge into n = 2^d segments, so the result has
// 20·4^d triangles and 10·4^d+2 vertices, all at distance radius from the origin.
// Grid points on the seams between base triangles are computed bit-identically by
// both neighbours and welded through a mesh.PositionStore. The weld precision is
// an absolute tolerance, so a radius/detail pair whose vertices would fall closer
// than two weld buckets (MinSpacing) is rejected up front; WithWeldPrecision
// widens the range.
//
// Guarantees:
//
//   - Deterministic: equal inputs produce identical meshes, index for index.
//   - Outward winding: every emitted triangle is counter-clockwise seen from outside.
//   - Structured errors (ErrInvalidRadius, ErrInvalidDetail) for bad parameters;
//     option constructors panic on meaningless values.
package geodesic
