// SPDX-License-Identifier: MIT
// Package: hexsphere/hexsphere
//
// options.go - functional options for Build and NewTruncatedIcosahedron.
//
// Deterministic defaults:
//   • faces         = true          (truncated variant: grouped, descending order)
//   • weldPrecision = mesh.WeldPrecision
//   • logger        = zap.NewNop()

package hexsphere

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/hexsphere/mesh"
)

// Option customizes Build.
type Option func(*config)

type config struct {
	faces         bool
	weldPrecision float32
	logger        *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		faces:         true,
		weldPrecision: mesh.WeldPrecision,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFaces selects the truncated variant (true: triangles grouped into one face
// per polygon, incident triangles visited in descending order) or the plain dual
// (false: no grouping, ascending order).
func WithFaces(enabled bool) Option {
	return func(c *config) { c.faces = enabled }
}

// WithWeldPrecision overrides the welding quantization factor. Panics if p <= 0.
func WithWeldPrecision(p float32) Option {
	if p <= 0 {
		panic("hexsphere: WithWeldPrecision(p<=0)")
	}
	return func(c *config) { c.weldPrecision = p }
}

// WithLogger routes construction statistics to l at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("hexsphere: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
