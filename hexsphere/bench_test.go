// SPDX-License-Identifier: MIT

package hexsphere_test

import (
	"testing"

	"github.com/katalvlaran/hexsphere/geodesic"
	"github.com/katalvlaran/hexsphere/hexsphere"
)

// BenchmarkBuild measures the dual pass alone on a detail-5 sphere.
func BenchmarkBuild(b *testing.B) {
	src, err := geodesic.NewIcosahedron(1, 5)
	if err != nil {
		b.Fatalf("NewIcosahedron: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hexsphere.Build(src); err != nil {
			b.Fatalf("Build: %v", err)
		}
	}
}

// BenchmarkNewTruncatedIcosahedron measures both passes.
func BenchmarkNewTruncatedIcosahedron(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := hexsphere.NewTruncatedIcosahedron(1, 5); err != nil {
			b.Fatalf("NewTruncatedIcosahedron: %v", err)
		}
	}
}
