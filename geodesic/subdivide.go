// SPDX-License-Identifier: MIT
// Package: hexsphere/geodesic
//
// subdivide.go - triangular lattice subdivision projected onto a sphere.
//
// Lattice layout for one base triangle (A, B, C), n = 2^detail:
//
//	row i (0..n) walks from edge AB (i=0) to corner C (i=n);
//	Aj = lerp(A, C, i/n), Bj = lerp(B, C, i/n);
//	point (i, j), j in 0..n-i, is lerp(Aj, Bj, j/(n-i)) normalized × radius.
//
// Row i and row i+1 are tiled by 2(n-i)-1 triangles; even j gives an "upward"
// triangle (i,k+1)(i+1,k)(i,k), odd j a "downward" one (i,k+1)(i+1,k+1)(i+1,k),
// with k = j/2. Both keep the winding of (A, B, C).

package geodesic

import (
	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/hexsphere/mesh"
)

// project normalizes p and scales it to radius.
func project(p vec3.T, radius float32) vec3.T {
	p.Normalize()
	p.Scale(radius)

	return p
}

// lattice computes the (n+1)(n+2)/2 projected grid points of triangle (a, b, c),
// row by row; row i holds n-i+1 points.
func lattice(a, b, c *vec3.T, radius float32, n int) [][]vec3.T {
	rows := make([][]vec3.T, n+1)
	for i := 0; i <= n; i++ {
		t := float32(i) / float32(n)
		aj := mesh.Lerp(a, c, t)
		bj := mesh.Lerp(b, c, t)
		cols := n - i

		row := make([]vec3.T, cols+1)
		for j := 0; j <= cols; j++ {
			if cols == 0 {
				// apex: Aj already is C, avoid the 0/0 parameter
				row[j] = project(aj, radius)
				continue
			}
			row[j] = project(mesh.Lerp(&aj, &bj, float32(j)/float32(cols)), radius)
		}
		rows[i] = row
	}

	return rows
}

// SubdivideTriangle emits the 4^detail lattice triangles of (a, b, c) into
// store.Target(). The corners may be at any distance from the origin; every
// emitted point lies on the sphere of the given radius. Grid points shared with
// previously subdivided neighbours are welded by the store.
//
// The caller validates radius > 0 and detail ≥ 0.
// Complexity: O(4^detail) time and memory.
func SubdivideTriangle(store *mesh.PositionStore, a, b, c vec3.T, radius float32, detail int) {
	dst := store.Target()
	n := 1 << uint(detail)
	grid := lattice(&a, &b, &c, radius, n)

	for i := 0; i < n; i++ {
		for j := 0; j < 2*(n-i)-1; j++ {
			k := j / 2

			var t mesh.Triangle
			if j%2 == 0 {
				// upward
				t[0] = store.Add(grid[i][k+1])
				t[1] = store.Add(grid[i+1][k])
				t[2] = store.Add(grid[i][k])
			} else {
				// downward
				t[0] = store.Add(grid[i][k+1])
				t[1] = store.Add(grid[i+1][k+1])
				t[2] = store.Add(grid[i+1][k])
			}
			dst.AddCell(t)
		}
	}
}

// Subdivide runs SubdivideTriangle over every triangle of src, in order, writing
// into the mesh behind store. src is not modified.
// Complexity: O(|src.Cells| · 4^detail).
func Subdivide(store *mesh.PositionStore, src *mesh.Polyhedron, radius float32, detail int) {
	for i := range src.Cells {
		a, b, c := src.Corners(i)
		SubdivideTriangle(store, a, b, c, radius, detail)
	}
}
