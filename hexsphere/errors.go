// SPDX-License-Identifier: MIT

package hexsphere

import "errors"

// ErrMalformedTopology indicates that the source mesh is not a closed manifold
// triangle mesh. Geodesic icosahedra never trigger it; seeing it means the mesh
// handed to Build was constructed incorrectly.
var ErrMalformedTopology = errors.New("hexsphere: malformed mesh topology")

// ErrTileNotFound is returned when a tile index is outside the catalog.
var ErrTileNotFound = errors.New("hexsphere: tile not found")
