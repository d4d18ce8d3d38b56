// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/hexsphere/geodesic"
	"github.com/katalvlaran/hexsphere/hexsphere"
	"github.com/katalvlaran/hexsphere/mesh"
	"github.com/katalvlaran/hexsphere/meshio"
)

// generate writes one file per detail level 0..cfg.detail into cfg.dir.
func generate(cfg config, log *zap.Logger) error {
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	if cfg.colored {
		log.Debug("colors", zap.Int64("seed", seed))
	}

	for detail := 0; detail <= cfg.detail; detail++ {
		log.Info("generating",
			zap.String("kind", string(cfg.kind())),
			zap.Float32("radius", cfg.radius),
			zap.Int("detail", detail),
		)

		p, err := build(cfg, detail, log)
		if err != nil {
			return err
		}
		if cfg.colored {
			p = p.UniqueVertices()
			p.AssignRandomFaceColors(rng)
		}

		path := filepath.Join(cfg.dir, meshio.FileName(cfg.kind(), cfg.radius, detail, cfg.format))
		if err := meshio.WriteFile(path, p, cfg.format); err != nil {
			return err
		}
		log.Info("written",
			zap.String("path", path),
			zap.Int("triangles", p.NumCells()),
			zap.Int("vertices", p.NumPositions()),
		)
	}

	return nil
}

// build returns the mesh of one detail level with smooth normals.
func build(cfg config, detail int, log *zap.Logger) (*mesh.Polyhedron, error) {
	if !cfg.truncated {
		p, err := geodesic.NewIcosahedron(cfg.radius, detail, geodesic.WithWeldPrecision(cfg.weldPrecision()))
		if err != nil {
			return nil, fmt.Errorf("detail %d: %w", detail, err)
		}
		p.ComputeTriangleNormals()
		return p, nil
	}

	res, err := hexsphere.NewTruncatedIcosahedron(cfg.radius, detail,
		hexsphere.WithWeldPrecision(cfg.weldPrecision()),
		hexsphere.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("detail %d: %w", detail, err)
	}
	res.Mesh.ComputeTriangleNormals()
	log.Info("polygons",
		zap.Int("pentagons", res.Stats.Pentagons),
		zap.Int("hexagons", res.Stats.Hexagons),
		zap.Int("other", res.Stats.Other),
	)

	return res.Mesh, nil
}
