// SPDX-License-Identifier: MIT

package hexsphere

import "fmt"

// ringItem pairs a tile with its breadth-first depth.
type ringItem struct {
	tile  int
	depth int
}

// ringWalker holds the mutable state of one Rings call.
type ringWalker struct {
	tiles    []Tile
	maxDepth int
	queue    []ringItem
	visited  []bool
	rings    [][]int
}

// Rings groups tiles by their step distance from start over tile adjacency:
// rings[0] is {start}, rings[1] its neighbours, and so on. Tiles within a ring
// appear in discovery order, which follows the counter-clockwise neighbour order.
// A negative maxDepth walks the whole catalog.
//
// Errors:
//   - ErrTileNotFound if start, or a neighbour listed by a tile, is out of range.
//
// Complexity: O(N + Σ|Neighbors|).
func Rings(tiles []Tile, start, maxDepth int) ([][]int, error) {
	if start < 0 || start >= len(tiles) {
		return nil, fmt.Errorf("Rings: start %d of %d: %w", start, len(tiles), ErrTileNotFound)
	}

	w := &ringWalker{
		tiles:    tiles,
		maxDepth: maxDepth,
		queue:    make([]ringItem, 0, len(tiles)),
		visited:  make([]bool, len(tiles)),
	}
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.rings, nil
}

// enqueue marks tile visited at depth d and files it under its ring.
func (w *ringWalker) enqueue(tile, d int) {
	w.visited[tile] = true
	if d == len(w.rings) {
		w.rings = append(w.rings, nil)
	}
	w.rings[d] = append(w.rings[d], tile)
	w.queue = append(w.queue, ringItem{tile: tile, depth: d})
}

// loop processes the queue until it is empty or a bad neighbour is met.
func (w *ringWalker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if w.maxDepth >= 0 && item.depth >= w.maxDepth {
			continue
		}
		for _, n := range w.tiles[item.tile].Neighbors {
			if n < 0 || n >= len(w.tiles) {
				return fmt.Errorf("Rings: tile %d lists neighbour %d: %w", item.tile, n, ErrTileNotFound)
			}
			if !w.visited[n] {
				w.enqueue(n, item.depth+1)
			}
		}
	}

	return nil
}
