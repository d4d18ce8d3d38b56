// SPDX-License-Identifier: MIT

// Package mesh defines the Polyhedron triangle-mesh container shared by every
// generator in github.com/katalvlaran/hexsphere, together with the passes that
// operate on a finished mesh:
//
//   - PositionStore: welds positions through a quantized spatial hash so that
//     geometrically identical points resolve to a single index.
//   - Topology:      vertex→incident-triangle map and per-triangle centroids.
//   - Normals:       smooth per-vertex (ComputeTriangleNormals) or flat per-face
//     (ComputeFaceNormals) shading normals with outward-orientation correction.
//   - Colors:        UniqueVertices + AssignRandomFaceColors for flat-coloured output.
//
// Positions, normals and colours are github.com/ungerik/go3d/vec3 values (three
// float32). A Polyhedron is filled by exactly one construction pass, receives its
// normals in a final pass and is then treated as immutable.
//
// Errors:
//
//	ErrIndexOutOfRange - a cell or face references a missing position/triangle.
//	ErrNoFaces         - a face-based pass was run on a mesh without faces.
//	ErrLengthMismatch  - per-vertex attribute slices disagree in length.
package mesh
