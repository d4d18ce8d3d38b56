// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexsphere/geodesic"
	"github.com/katalvlaran/hexsphere/meshio"
)

func TestGenerate_Icosahedra(t *testing.T) {
	dir := t.TempDir()
	cfg := config{detail: 2, radius: 1, format: meshio.Bin, dir: dir}
	require.NoError(t, generate(cfg, zap.NewNop()))

	for d := 0; d <= 2; d++ {
		path := filepath.Join(dir, meshio.FileName(meshio.Icosahedron, 1, d, meshio.Bin))
		p, err := meshio.ReadFile(path, meshio.Bin, false)
		require.NoError(t, err, path)
		assert.Equal(t, geodesic.VertexCount(d), p.NumPositions())
		assert.Equal(t, geodesic.TriangleCount(d), p.NumCells())
		for i, n := range p.Normals {
			require.InDelta(t, 1, float64(n.Length()), 1e-4, "normal %d", i)
		}
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestGenerate_ColoredHexspheres(t *testing.T) {
	dir := t.TempDir()
	cfg := config{truncated: true, colored: true, detail: 1, radius: 2.5, seed: 42, format: meshio.JSON, dir: dir}
	require.NoError(t, generate(cfg, zap.NewNop()))

	path := filepath.Join(dir, "hexsphere_r2.5_d1.json")
	p, err := meshio.ReadFile(path, meshio.JSON, true)
	require.NoError(t, err)

	// unique vertices: three per triangle, 6·80 triangles
	assert.Equal(t, 480, p.NumCells())
	assert.Equal(t, 3*480, p.NumPositions())
	assert.Len(t, p.Colors, p.NumPositions())
	assert.Len(t, p.Faces, geodesic.VertexCount(1))

	// one colour per face
	for i, f := range p.Faces {
		want := p.Colors[p.Cells[f[0]][0]]
		for _, c := range f {
			for _, v := range p.Cells[c] {
				require.Equal(t, want, p.Colors[v], "face %d", i)
			}
		}
	}
}

func TestGenerate_Seeded(t *testing.T) {
	read := func() []byte {
		dir := t.TempDir()
		cfg := config{colored: true, detail: 1, radius: 1, seed: 9, format: meshio.Bin, dir: dir}
		require.NoError(t, generate(cfg, zap.NewNop()))
		b, err := os.ReadFile(filepath.Join(dir, "icosahedron_r1_d1.bin"))
		require.NoError(t, err)
		return b
	}
	assert.Equal(t, read(), read())
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	assert.Equal(t, exitOK, run([]string{"-t", "-d", "1", dir}, &out))
	assert.Contains(t, out.String(), "hexsphere_r1_d1.bin")
	assert.FileExists(t, filepath.Join(dir, "hexsphere_r1_d0.bin"))

	assert.Equal(t, exitUsage, run([]string{"-r", "-2", dir}, io.Discard))
	assert.Equal(t, exitUsage, run([]string{filepath.Join(dir, "missing")}, io.Discard))
	assert.Equal(t, exitOK, run([]string{"-h"}, io.Discard))

	// a directory squatting on the output name makes the write fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "icosahedron_r1_d0.json"), 0o755))
	assert.Equal(t, exitError, run([]string{"-d", "0", "-f", "json", dir}, io.Discard))
}

func TestRun_LogsFallback(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-d", "zero", "-r", "2", "-d", "0", t.TempDir()}, &out))
	assert.NotContains(t, out.String(), "not an integer")

	out.Reset()
	require.Equal(t, exitOK, run([]string{"-r", "abc", "-d", "0", t.TempDir()}, &out))
	assert.Contains(t, out.String(), "not a number")
}

func TestRun_LogsPolygonCensus(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-t", "-d", "1", t.TempDir()}, &out))

	// info level, no -v needed
	assert.Contains(t, out.String(), "polygons")
	assert.Contains(t, out.String(), "pentagons")
	assert.Contains(t, out.String(), `"pentagons": 12`)
}

func TestRun_WeldRangeRejectedBeforeWriting(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	assert.Equal(t, exitUsage, run([]string{"-t", "-r", "0.01", "-d", "7", dir}, &out))
	assert.Contains(t, out.String(), "weld precision")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Equal(t, exitOK, run([]string{"-t", "-r", "0.01", "-d", "2", "-p", "1e6", dir}, io.Discard))
	assert.FileExists(t, filepath.Join(dir, "hexsphere_r0.01_d2.bin"))
}
