// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/vec3"
)

// Topology is the read-only adjacency index of a finished triangle mesh.
type Topology struct {
	// VertexFaces[v] lists, in ascending order, the triangles having v as a corner.
	// A degenerate triangle repeating v appears once per occurrence.
	VertexFaces [][]int

	// Centroids[t] is the centroid of triangle t.
	Centroids []vec3.T
}

// NewTopology indexes p in a single pass over its triangles.
//
// Errors:
//   - ErrIndexOutOfRange if a triangle references a missing position.
//
// Complexity: O(V + T) time and memory.
func NewTopology(p *Polyhedron) (*Topology, error) {
	n := len(p.Positions)
	topo := &Topology{
		VertexFaces: make([][]int, n),
		Centroids:   make([]vec3.T, len(p.Cells)),
	}

	for i, t := range p.Cells {
		for _, v := range t {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("NewTopology: cell %d corner %d: %w", i, v, ErrIndexOutOfRange)
			}
			topo.VertexFaces[v] = append(topo.VertexFaces[v], i)
		}
		a, b, c := p.Corners(i)
		topo.Centroids[i] = Centroid(&a, &b, &c)
	}

	return topo, nil
}

// Valence returns the number of triangles incident to v.
func (t *Topology) Valence(v int) int { return len(t.VertexFaces[v]) }

// CenterOf returns the average of the centroids of the given triangles.
// The zero vector is returned for an empty list.
func (t *Topology) CenterOf(faces []int) vec3.T {
	var sum vec3.T
	if len(faces) == 0 {
		return sum
	}
	for _, f := range faces {
		sum.Add(&t.Centroids[f])
	}
	sum.Scale(1 / float32(len(faces)))

	return sum
}
