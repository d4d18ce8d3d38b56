// SPDX-License-Identifier: MIT

package meshio_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexsphere/geodesic"
	"github.com/katalvlaran/hexsphere/hexsphere"
	"github.com/katalvlaran/hexsphere/mesh"
)

var errBroken = errors.New("broken stream")

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errBroken }

// icosahedron returns a detail-1 geodesic sphere with normals.
func icosahedron(t *testing.T) *mesh.Polyhedron {
	t.Helper()
	p, err := geodesic.NewIcosahedron(1.5, 1)
	require.NoError(t, err)
	p.ComputeTriangleNormals()

	return p
}

// coloredHexsphere returns a detail-1 hexsphere with flat colours and faces.
func coloredHexsphere(t *testing.T) *mesh.Polyhedron {
	t.Helper()
	res, err := hexsphere.NewTruncatedIcosahedron(1, 1)
	require.NoError(t, err)
	res.Mesh.ComputeTriangleNormals()
	p := res.Mesh.UniqueVertices()
	p.AssignRandomFaceColors(rand.New(rand.NewSource(7)))

	return p
}
