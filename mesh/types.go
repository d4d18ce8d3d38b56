// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/vec3"
)

// Triangle is an ordered triple of indices into Polyhedron.Positions.
// The order is the winding: counter-clockwise seen from outside means the
// geometric normal (B-A)×(C-A) points away from the origin.
type Triangle [3]int

// Polyhedron is an indexed triangle mesh.
//
// Positions, Normals and (when present) Colors are parallel slices: entry i of
// each describes vertex i. Faces optionally groups triangle indices into the
// polygons of a dual mesh (one hexagon or pentagon per entry); it is nil for
// plain triangle meshes.
type Polyhedron struct {
	// Positions holds the welded vertex positions.
	Positions []vec3.T `json:"positions"`

	// Cells holds the triangles.
	Cells []Triangle `json:"cells"`

	// Normals holds one normal per position. Slots are zero until a normal pass runs.
	Normals []vec3.T `json:"normals"`

	// Faces groups triangle indices into polygons; nil when not grouped.
	Faces [][]int `json:"faces,omitempty"`

	// Colors holds one RGB colour per position, or nil.
	Colors []vec3.T `json:"colors,omitempty"`
}

// New returns an empty Polyhedron.
func New() *Polyhedron {
	return &Polyhedron{
		Positions: []vec3.T{},
		Cells:     []Triangle{},
		Normals:   []vec3.T{},
	}
}

// NumPositions returns the number of vertices.
func (p *Polyhedron) NumPositions() int { return len(p.Positions) }

// NumCells returns the number of triangles.
func (p *Polyhedron) NumCells() int { return len(p.Cells) }

// HasFaces reports whether the triangles are grouped into polygons.
func (p *Polyhedron) HasFaces() bool { return len(p.Faces) > 0 }

// HasColors reports whether per-vertex colours were assigned.
func (p *Polyhedron) HasColors() bool { return len(p.Colors) > 0 }

// AddCell appends t and returns its triangle index.
func (p *Polyhedron) AddCell(t Triangle) int {
	p.Cells = append(p.Cells, t)

	return len(p.Cells) - 1
}

// Corners returns the three positions of triangle i. The caller guarantees i is valid.
func (p *Polyhedron) Corners(i int) (a, b, c vec3.T) {
	t := p.Cells[i]

	return p.Positions[t[0]], p.Positions[t[1]], p.Positions[t[2]]
}

// Validate checks the structural invariants of the mesh:
//   - len(Normals) == len(Positions), and Colors is empty or the same length;
//   - every triangle corner is < len(Positions);
//   - every face entry is < len(Cells).
//
// Complexity: O(V + T + Σ|face|).
func (p *Polyhedron) Validate() error {
	n := len(p.Positions)
	if len(p.Normals) != n {
		return fmt.Errorf("Validate: %d normals for %d positions: %w", len(p.Normals), n, ErrLengthMismatch)
	}
	if len(p.Colors) != 0 && len(p.Colors) != n {
		return fmt.Errorf("Validate: %d colors for %d positions: %w", len(p.Colors), n, ErrLengthMismatch)
	}
	for i, t := range p.Cells {
		for _, v := range t {
			if v < 0 || v >= n {
				return fmt.Errorf("Validate: cell %d corner %d: %w", i, v, ErrIndexOutOfRange)
			}
		}
	}
	for i, f := range p.Faces {
		for _, c := range f {
			if c < 0 || c >= len(p.Cells) {
				return fmt.Errorf("Validate: face %d cell %d: %w", i, c, ErrIndexOutOfRange)
			}
		}
	}

	return nil
}
