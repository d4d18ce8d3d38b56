// SPDX-License-Identifier: MIT

// Package meshio serializes mesh.Polyhedron values.
//
// Two formats are supported:
//
//   - Bin, little-endian:
//     u32 vertex count, u32 triangle count,
//     positions (3×f32 each), normals (3×f32 each),
//     colors (3×f32 each, only when the mesh has colours),
//     cells (3×u32 each).
//     The header does not say whether colours follow; readers are told out of
//     band (ReadBinary's withColors argument).
//   - JSON: an object with "positions", "cells", "normals" and, when present,
//     "faces" and "colors". Vectors and triangles are arrays of three numbers.
//
// Output files are named by FileName:
//
//	{icosahedron|hexsphere}_r{radius}_d{detail}.{bin|json}
//
// with the radius printed in its shortest form ("1", "2.5").
//
// Errors:
//
//	ErrIO             - the underlying reader, writer or file failed.
//	ErrUnknownFormat  - a format name is neither "bin" nor "json".
//	ErrMalformedInput - decoded data is truncated, inconsistent or out of range.
package meshio
