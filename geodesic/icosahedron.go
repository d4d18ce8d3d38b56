// SPDX-License-Identifier: MIT

package geodesic

import "github.com/katalvlaran/hexsphere/mesh"

const methodNewIcosahedron = "NewIcosahedron"

// NewIcosahedron returns the geodesic icosahedron of the given radius and detail
// level: the base icosahedron with every face split into 4^detail triangles whose
// vertices are projected onto the sphere. Normals are allocated but not computed;
// call ComputeTriangleNormals on the result.
//
// Errors:
//   - ErrInvalidRadius if radius is not finite and > 0, or so large that
//     quantized coordinates overflow the weld key.
//   - ErrInvalidDetail if detail is outside [0, MaxDetail], or if MinSpacing is
//     below mesh.MinWeldBuckets buckets of the weld precision (neighbouring
//     vertices would merge; see WithWeldPrecision).
//
// Complexity: O(20·4^detail) time and memory.
func NewIcosahedron(radius float32, detail int, opts ...Option) (*mesh.Polyhedron, error) {
	cfg := newConfig(opts...)
	if err := validateParams(methodNewIcosahedron, radius, detail, cfg); err != nil {
		return nil, err
	}

	out := mesh.New()
	store := mesh.NewPositionStore(out, cfg.weldPrecision)
	Subdivide(store, BaseIcosahedron(), radius, detail)

	return out, nil
}

// TriangleCount returns 20·4^detail, the number of triangles at a detail level.
func TriangleCount(detail int) int { return BaseFaceCount << (2 * uint(detail)) }

// VertexCount returns 10·4^detail+2, the number of welded vertices at a detail level.
func VertexCount(detail int) int { return 10<<(2*uint(detail)) + 2 }
