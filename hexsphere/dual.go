// SPDX-License-Identifier: MIT

package hexsphere

import (
	"fmt"

	"github.com/ungerik/go3d/vec3"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexsphere/mesh"
)

const methodBuild = "Build"

// Result is the output of Build.
type Result struct {
	// Mesh is the dual mesh. Normals are allocated but not computed.
	Mesh *mesh.Polyhedron

	// Stats counts the polygons by side count.
	Stats Stats

	// Tiles describes one polygon per source vertex, indexed like the source vertices.
	Tiles []Tile
}

// edgeKey identifies an undirected source edge, lo < hi.
type edgeKey struct{ lo, hi int }

func newEdgeKey(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// dualBuilder holds the caches of one Build call.
type dualBuilder struct {
	src   *mesh.Polyhedron
	topo  *mesh.Topology
	store *mesh.PositionStore
	out   *mesh.Polyhedron

	// mids caches the mid-centroid of every source edge: the midpoint between the
	// centroids of its two triangles. Both endpoints' polygons read the same value.
	mids map[edgeKey]vec3.T
}

// Build constructs the hexagon/pentagon dual of src.
//
// Implementation:
//   - Stage 1: index src (vertex→triangles, centroids).
//   - Stage 2: for every source vertex v, fan its polygon around the mean of the
//     incident centroids, two triangles per incident source triangle.
//   - Stage 3: optionally group each fan into a face; collect Stats and Tiles.
//
// Errors:
//   - mesh.ErrIndexOutOfRange if src references missing positions.
//   - ErrMalformedTopology if src is not a closed manifold triangle mesh.
//
// Complexity: O(V + T) time and memory for a bounded vertex valence.
func Build(src *mesh.Polyhedron, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	topo, err := mesh.NewTopology(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	out := mesh.New()
	b := &dualBuilder{
		src:   src,
		topo:  topo,
		store: mesh.NewPositionStore(out, cfg.weldPrecision),
		out:   out,
		mids:  make(map[edgeKey]vec3.T, 3*len(src.Cells)/2),
	}
	if cfg.faces {
		out.Faces = make([][]int, 0, len(src.Positions))
	}

	res := &Result{Mesh: out, Tiles: make([]Tile, 0, len(src.Positions))}
	for v := range src.Positions {
		faces := topo.VertexFaces[v]
		res.Stats.add(len(faces))

		face, err := b.polygon(v, faces, cfg.faces)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		if cfg.faces {
			out.Faces = append(out.Faces, face)
		}
		res.Tiles = append(res.Tiles, b.tile(v, faces))
	}

	cfg.logger.Debug("dual built",
		zap.Int("hexagons", res.Stats.Hexagons),
		zap.Int("pentagons", res.Stats.Pentagons),
		zap.Int("other", res.Stats.Other),
		zap.Int("positions", out.NumPositions()),
		zap.Int("cells", out.NumCells()),
	)

	return res, nil
}

// polygon emits the fan of vertex v and returns the indices of its triangles.
// With descending set the incident triangles are visited last to first.
func (b *dualBuilder) polygon(v int, faces []int, descending bool) ([]int, error) {
	if len(faces) < 3 {
		return nil, fmt.Errorf("vertex %d has %d incident triangles: %w", v, len(faces), ErrMalformedTopology)
	}
	center := b.topo.CenterOf(faces)
	emitted := make([]int, 0, 2*len(faces))

	for n := range faces {
		f := faces[n]
		if descending {
			f = faces[len(faces)-1-n]
		}

		p, q, err := spokes(b.src.Cells[f], v)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", f, err)
		}
		centroid := b.topo.Centroids[f]
		midP, err := b.midCentroid(v, p, f, faces)
		if err != nil {
			return nil, err
		}
		midQ, err := b.midCentroid(v, q, f, faces)
		if err != nil {
			return nil, err
		}

		ci := b.store.Add(center)
		ti := b.store.Add(centroid)
		pi := b.store.Add(midP)
		qi := b.store.Add(midQ)

		emitted = append(emitted,
			b.out.AddCell(mesh.Triangle{ci, qi, ti}),
			b.out.AddCell(mesh.Triangle{ci, ti, pi}),
		)
	}

	return emitted, nil
}

// spokes returns the corners of t other than v: q follows v in the cyclic order
// of t and p precedes it. Choosing them by cyclic position rather than by list
// position keeps every fan triangle wound like its source triangle.
func spokes(t mesh.Triangle, v int) (p, q int, err error) {
	if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
		return 0, 0, fmt.Errorf("degenerate triangle %v: %w", t, ErrMalformedTopology)
	}
	for k := 0; k < 3; k++ {
		if t[k] == v {
			return t[(k+2)%3], t[(k+1)%3], nil
		}
	}

	return 0, 0, fmt.Errorf("vertex %d not in triangle %v: %w", v, t, ErrMalformedTopology)
}

// adjacent returns the triangle of faces, other than current, that contains w.
// Every triangle of faces already contains v, so this is the neighbour of
// current across the edge v–w.
func (b *dualBuilder) adjacent(w, current int, faces []int) (int, bool) {
	for _, f := range faces {
		if f == current {
			continue
		}
		t := b.src.Cells[f]
		if t[0] == w || t[1] == w || t[2] == w {
			return f, true
		}
	}

	return 0, false
}

// midCentroid returns the midpoint between the centroid of f and the centroid of
// its neighbour across the edge v–w, computing it once per edge.
func (b *dualBuilder) midCentroid(v, w, f int, faces []int) (vec3.T, error) {
	key := newEdgeKey(v, w)
	if m, ok := b.mids[key]; ok {
		return m, nil
	}

	adj, ok := b.adjacent(w, f, faces)
	if !ok {
		return vec3.T{}, fmt.Errorf("edge %d–%d of triangle %d has no neighbour: %w", v, w, f, ErrMalformedTopology)
	}
	m := mesh.Lerp(&b.topo.Centroids[f], &b.topo.Centroids[adj], 0.5)
	b.mids[key] = m

	return m, nil
}
