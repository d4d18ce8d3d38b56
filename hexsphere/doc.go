// SPDX-License-Identifier: MIT

// Package hexsphere builds the dual of a geodesic icosahedron: a closed mesh of
// hexagons and exactly twelve pentagons, triangulated as fans around each
// polygon centre.
//
// For every vertex v of the source mesh, with incident triangles F:
//
//   - the polygon centre is the mean of the centroids of F;
//   - every triangle f of F contributes its centroid and the two mid-centroids
//     shared with the neighbours of f across its edges through v;
//   - f yields two fan triangles (centre, midQ, centroid) and
//     (centre, centroid, midP), counter-clockwise seen from outside.
//
// Build runs the construction on any closed, consistently wound triangle mesh;
// NewTruncatedIcosahedron is the usual entry point. With faces enabled (the
// default) the two triangles of every polygon are grouped into Mesh.Faces, one
// face per source vertex, and the incident triangles are visited in descending
// order; without faces they are visited in ascending order. Both orders emit the
// same geometry and winding.
//
// Besides the mesh, Build reports Stats (pentagon/hexagon counts) and a Tile
// catalog: polygon centre, side count, neighbouring tiles in counter-clockwise
// order and the centre as an s2.LatLng. Rings walks the catalog breadth-first,
// grouping tiles by step distance from a start tile.
//
// Errors:
//
//	ErrMalformedTopology - an edge through v has no second incident triangle, a
//	                       vertex has fewer than three triangles, or a triangle
//	                       repeats a vertex. It signals a broken source mesh.
//	ErrTileNotFound      - Rings was given an index outside the catalog.
package hexsphere
