// SPDX-License-Identifier: MIT

package geodesic_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hexsphere/geodesic"
)

// BenchmarkNewIcosahedron measures subdivision plus welding per detail level.
func BenchmarkNewIcosahedron(b *testing.B) {
	for _, detail := range []int{3, 5, 7} {
		b.Run(fmt.Sprintf("d%d", detail), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := geodesic.NewIcosahedron(1, detail); err != nil {
					b.Fatalf("NewIcosahedron: %v", err)
				}
			}
		})
	}
}
