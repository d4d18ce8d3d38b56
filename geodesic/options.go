// SPDX-License-Identifier: MIT
// Package: hexsphere/geodesic
//
// options.go - functional options for NewIcosahedron.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless input;
//     generators themselves return errors.
//   • Later options override earlier ones.

package geodesic

import "github.com/katalvlaran/hexsphere/mesh"

// MaxDetail is the largest supported detail level. The hexsphere of the next
// level has 120·4^13 > 2^32 triangles, which the u32 header of the binary format
// cannot count.
const MaxDetail = 12

// Option customizes NewIcosahedron.
type Option func(*config)

// config aggregates the knobs of NewIcosahedron. Passed by value.
type config struct {
	// weldPrecision is the quantization factor of the welding cache.
	weldPrecision float32
}

// newConfig resolves opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{weldPrecision: mesh.WeldPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWeldPrecision overrides the welding quantization factor (see
// mesh.WeldPrecision). Panics if p <= 0.
func WithWeldPrecision(p float32) Option {
	if p <= 0 {
		panic("geodesic: WithWeldPrecision(p<=0)")
	}
	return func(c *config) {
		c.weldPrecision = p
	}
}
