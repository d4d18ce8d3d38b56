// SPDX-License-Identifier: MIT

package hexsphere

import (
	"fmt"

	"github.com/katalvlaran/hexsphere/geodesic"
	"github.com/katalvlaran/hexsphere/mesh"
)

const methodNewTruncatedIcosahedron = "NewTruncatedIcosahedron"

// dualSpacingRatio relates the closest pair of dual vertices (a centroid and an
// adjacent mid-centroid, about 0.289 of the source edge) to geodesic.MinSpacing.
const dualSpacingRatio = 0.25

// ValidateParams reports whether NewTruncatedIcosahedron accepts radius and
// detail under opts, without building anything. Besides the geodesic checks,
// the dual's closer vertex spacing must be resolvable by the weld precision.
//
// Errors:
//   - geodesic.ErrInvalidRadius / geodesic.ErrInvalidDetail.
func ValidateParams(radius float32, detail int, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := geodesic.ValidateParams(radius, detail, geodesic.WithWeldPrecision(cfg.weldPrecision)); err != nil {
		return fmt.Errorf("%s: %w", methodNewTruncatedIcosahedron, err)
	}

	spacing := dualSpacingRatio * geodesic.MinSpacing(radius, detail)
	if !mesh.Separable(spacing, cfg.weldPrecision) {
		return fmt.Errorf("%s: dual vertex spacing %.3g at radius %v, detail %d is below %d weld buckets of %.3g; raise the weld precision: %w",
			methodNewTruncatedIcosahedron, spacing, radius, detail, mesh.MinWeldBuckets, 1/cfg.weldPrecision, geodesic.ErrInvalidDetail)
	}

	return nil
}

// NewTruncatedIcosahedron builds the geodesic icosahedron of the given radius and
// detail level and returns its dual. Options apply to both passes (the weld
// precision) and to Build (faces, logger).
//
// Errors:
//   - geodesic.ErrInvalidRadius / geodesic.ErrInvalidDetail for bad parameters,
//     including a detail level too fine for the weld precision (see ValidateParams).
//   - ErrMalformedTopology never occurs for a geodesic source; it is propagated
//     if it does.
//
// Complexity: O(20·4^detail).
func NewTruncatedIcosahedron(radius float32, detail int, opts ...Option) (*Result, error) {
	if err := ValidateParams(radius, detail, opts...); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	src, err := geodesic.NewIcosahedron(radius, detail, geodesic.WithWeldPrecision(cfg.weldPrecision))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewTruncatedIcosahedron, err)
	}
	res, err := Build(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewTruncatedIcosahedron, err)
	}

	return res, nil
}
