// SPDX-License-Identifier: MIT

package mesh

import (
	"math"

	"github.com/ungerik/go3d/vec3"
)

// WeldPrecision is the default quantization factor of the welding cache: every
// coordinate is multiplied by it and rounded, so points closer than roughly
// 1/WeldPrecision on every axis share a key. The tolerance is absolute. It is
// only safe while distinct points stay MinWeldBuckets buckets apart, which
// generators check with Separable before building.
const WeldPrecision float32 = 10000

// MinWeldBuckets is the smallest separation, in buckets, at which two distinct
// points are guaranteed distinct keys (any separation above √3 buckets is).
const MinWeldBuckets = 2

// maxWeldKey bounds |coordinate|·precision so that keys fit an int64.
const maxWeldKey = 1 << 62

// WeldKey is the quantized form of a position.
type WeldKey [3]int64

// Separable reports whether points at least spacing apart get distinct keys
// under precision.
func Separable(spacing, precision float32) bool {
	return float64(spacing)*float64(precision) >= MinWeldBuckets
}

// KeyInRange reports whether coordinates up to extent in magnitude quantize
// without overflowing a WeldKey under precision.
func KeyInRange(extent, precision float32) bool {
	return math.Abs(float64(extent))*float64(precision) < maxWeldKey
}

// PositionStore appends positions to a Polyhedron while welding duplicates.
//
// The store is a spatial hash with fixed-size buckets, not an epsilon ball: two
// points that straddle a bucket boundary stay distinct even when they are closer
// than the tolerance. Generators keep their arithmetic bit-reproducible along
// shared edges so this never happens in practice.
//
// A store is owned by a single construction pass and discarded afterwards.
type PositionStore struct {
	dst       *Polyhedron
	precision float32
	cache     map[WeldKey]int
}

// NewPositionStore binds a store to dst using the given quantization factor.
// Positions already present in dst are indexed first (earlier index wins on a
// key collision). A precision <= 0 selects WeldPrecision.
// Complexity: O(len(dst.Positions)).
func NewPositionStore(dst *Polyhedron, precision float32) *PositionStore {
	if precision <= 0 {
		precision = WeldPrecision
	}
	s := &PositionStore{
		dst:       dst,
		precision: precision,
		cache:     make(map[WeldKey]int, len(dst.Positions)),
	}
	for i := range dst.Positions {
		k := s.Key(dst.Positions[i])
		if _, ok := s.cache[k]; !ok {
			s.cache[k] = i
		}
	}

	return s
}

// Key quantizes p. Coordinates are expected to satisfy KeyInRange.
func (s *PositionStore) Key(p vec3.T) WeldKey {
	return WeldKey{
		int64(math.Round(float64(p[0]) * float64(s.precision))),
		int64(math.Round(float64(p[1]) * float64(s.precision))),
		int64(math.Round(float64(p[2]) * float64(s.precision))),
	}
}

// Add returns the index of p, appending it (with a zero normal slot) when no
// previously added position shares its key.
// Complexity: O(1) amortized.
func (s *PositionStore) Add(p vec3.T) int {
	k := s.Key(p)
	if i, ok := s.cache[k]; ok {
		return i
	}

	s.dst.Positions = append(s.dst.Positions, p)
	s.dst.Normals = append(s.dst.Normals, vec3.Zero)
	i := len(s.dst.Positions) - 1
	s.cache[k] = i

	return i
}

// Target returns the Polyhedron the store appends to.
func (s *PositionStore) Target() *Polyhedron { return s.dst }

// Len returns the number of distinct keys seen so far.
func (s *PositionStore) Len() int { return len(s.cache) }
