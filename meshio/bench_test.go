// SPDX-License-Identifier: MIT

package meshio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/katalvlaran/hexsphere/hexsphere"
	"github.com/katalvlaran/hexsphere/meshio"
)

func benchMesh(b *testing.B) *hexsphere.Result {
	b.Helper()
	res, err := hexsphere.NewTruncatedIcosahedron(1, 5)
	if err != nil {
		b.Fatalf("NewTruncatedIcosahedron: %v", err)
	}
	res.Mesh.ComputeTriangleNormals()

	return res
}

// BenchmarkWriteBinary measures encoding a detail-5 hexsphere.
func BenchmarkWriteBinary(b *testing.B) {
	p := benchMesh(b).Mesh
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := meshio.WriteBinary(io.Discard, p); err != nil {
			b.Fatalf("WriteBinary: %v", err)
		}
	}
}

// BenchmarkReadBinary measures decoding the same mesh from memory.
func BenchmarkReadBinary(b *testing.B) {
	var buf bytes.Buffer
	if err := meshio.WriteBinary(&buf, benchMesh(b).Mesh); err != nil {
		b.Fatalf("WriteBinary: %v", err)
	}
	data := buf.Bytes()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := meshio.ReadBinary(bytes.NewReader(data), false); err != nil {
			b.Fatalf("ReadBinary: %v", err)
		}
	}
}

// BenchmarkWriteJSON measures the text encoder for comparison.
func BenchmarkWriteJSON(b *testing.B) {
	p := benchMesh(b).Mesh
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := meshio.WriteJSON(io.Discard, p); err != nil {
			b.Fatalf("WriteJSON: %v", err)
		}
	}
}
