// SPDX-License-Identifier: MIT

package geodesic

import (
	"math"

	"github.com/katalvlaran/hexsphere/mesh"
)

// latticeSpacingRatio bounds the shortest distance between two grid points of a
// unit-radius detail-0 lattice from below: the base edge chord is 1.0515, and
// the projection may shorten it to cos(37.4°) of that near the base corners.
const latticeSpacingRatio = 0.8

// MinSpacing returns a lower bound of the distance between any two distinct
// vertices of the geodesic icosahedron of the given radius and detail level
// (detail in [0, MaxDetail]).
func MinSpacing(radius float32, detail int) float32 {
	return latticeSpacingRatio * radius / float32(uint64(1)<<uint(detail))
}

// validateRadius ensures radius is finite and > 0.
func validateRadius(method string, radius float32) error {
	r := float64(radius)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return geodesicErrorf(method, ErrInvalidRadius, "got %v", radius)
	}

	return nil
}

// validateDetail ensures 0 ≤ detail ≤ MaxDetail.
func validateDetail(method string, detail int) error {
	if detail < 0 || detail > MaxDetail {
		return geodesicErrorf(method, ErrInvalidDetail, "must be in [0,%d], got %d", MaxDetail, detail)
	}

	return nil
}

// validateWeld ensures the welding cache can tell every vertex apart:
// coordinates up to radius must quantize without overflow (ErrInvalidRadius),
// and vertices at least spacing apart must land in distinct buckets
// (ErrInvalidDetail, since a lower detail or a larger radius widens the lattice).
func validateWeld(method string, radius float32, detail int, spacing, precision float32) error {
	if !mesh.KeyInRange(radius, precision) {
		return geodesicErrorf(method, ErrInvalidRadius,
			"radius %v overflows the weld key at precision %v", radius, precision)
	}
	if !mesh.Separable(spacing, precision) {
		return geodesicErrorf(method, ErrInvalidDetail,
			"vertex spacing %.3g at radius %v, detail %d is below %d weld buckets of %.3g; raise the weld precision",
			spacing, radius, detail, mesh.MinWeldBuckets, 1/precision)
	}

	return nil
}

// ValidateParams reports whether NewIcosahedron accepts radius and detail under
// opts, without building anything.
//
// Errors:
//   - ErrInvalidRadius if radius is not finite and > 0, or too large for the weld key.
//   - ErrInvalidDetail if detail is outside [0, MaxDetail], or the lattice is
//     finer than the weld precision can resolve.
func ValidateParams(radius float32, detail int, opts ...Option) error {
	return validateParams(methodNewIcosahedron, radius, detail, newConfig(opts...))
}

func validateParams(method string, radius float32, detail int, cfg config) error {
	if err := validateRadius(method, radius); err != nil {
		return err
	}
	if err := validateDetail(method, detail); err != nil {
		return err
	}

	return validateWeld(method, radius, detail, MinSpacing(radius, detail), cfg.weldPrecision)
}
