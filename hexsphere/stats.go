// SPDX-License-Identifier: MIT

package hexsphere

import "fmt"

// Stats counts the dual polygons by side count. A geodesic icosahedron of any
// detail level yields exactly 12 pentagons and no Other; the counts are
// reported, not enforced.
type Stats struct {
	Pentagons int
	Hexagons  int
	Other     int
}

func (s *Stats) add(sides int) {
	switch sides {
	case 5:
		s.Pentagons++
	case 6:
		s.Hexagons++
	default:
		s.Other++
	}
}

// Total returns the number of polygons.
func (s Stats) Total() int { return s.Pentagons + s.Hexagons + s.Other }

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("pentagons=%d hexagons=%d other=%d", s.Pentagons, s.Hexagons, s.Other)
}
