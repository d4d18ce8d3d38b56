// SPDX-License-Identifier: MIT

package mesh

import "github.com/ungerik/go3d/vec3"

// Lerp returns a*(1-t) + b*t.
//
// Each product is rounded to float32 before the sum (the explicit conversions
// forbid fused multiply-add). Together with the commutativity of the final
// addition this makes Lerp(a, b, t) and Lerp(b, a, 1-t) bit-identical whenever
// 1-t is exact, which is what lets seam points computed from two different base
// triangles weld to one index.
func Lerp(a, b *vec3.T, t float32) vec3.T {
	s := 1 - t

	return vec3.T{
		float32(a[0]*s) + float32(b[0]*t),
		float32(a[1]*s) + float32(b[1]*t),
		float32(a[2]*s) + float32(b[2]*t),
	}
}

// Centroid returns the centroid of triangle (a, b, c), expressed as the
// midpoint of AB advanced one third of the way toward C. The result is the
// vertex average.
func Centroid(a, b, c *vec3.T) vec3.T {
	half := vec3.Sub(b, a)
	half.Scale(0.5)
	mid := vec3.Add(a, &half)

	toC := vec3.Sub(c, &mid)
	toC.Scale(1.0 / 3.0)

	return vec3.Add(&toC, &mid)
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func Normalized(v vec3.T) vec3.T {
	v.Normalize()

	return v
}
