// Package hexsphere generates sphere meshes: geodesic icosahedra and their
// hexagon/pentagon duals ("hexspheres"), with normals, flat face colours and
// binary/JSON export.
//
// What is inside?
//
//	mesh/        - Polyhedron (positions, cells, normals, faces, colours),
//	               welding PositionStore, Topology index, normal passes, colouring
//	geodesic/    - base icosahedron and lattice subdivision onto a sphere
//	hexsphere/   - dual construction, polygon stats and the Tile catalog
//	meshio/      - binary and JSON codecs, output file naming
//	cmd/hexsphere - command-line generator for detail levels 0..N
//
// Quick example:
//
//	res, err := hexsphere.NewTruncatedIcosahedron(1, 3)
//	if err != nil { ... }
//	res.Mesh.ComputeTriangleNormals()
//	err = meshio.WriteFile("hexsphere_r1_d3.bin", res.Mesh, meshio.Bin)
//
// A detail-d geodesic icosahedron has 20·4^d triangles and 10·4^d+2 vertices;
// its dual has one polygon per vertex, exactly twelve of them pentagons.
//
//	go install github.com/katalvlaran/hexsphere/cmd/hexsphere@latest
package hexsphere
