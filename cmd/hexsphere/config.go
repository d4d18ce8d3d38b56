// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/hexsphere/geodesic"
	"github.com/katalvlaran/hexsphere/hexsphere"
	"github.com/katalvlaran/hexsphere/mesh"
	"github.com/katalvlaran/hexsphere/meshio"
)

const (
	defaultDetail = 7
	defaultRadius = float32(1.0)
	defaultOutput = "output/"
)

// errUsage marks arguments rejected before any generation starts.
var errUsage = errors.New("invalid arguments")

// config is the resolved command line.
type config struct {
	truncated bool
	colored   bool
	verbose   bool
	detail    int
	radius    float32
	precision float32
	seed      int64
	format    meshio.Format
	dir       string

	// warnings collects fallbacks applied while parsing, logged once a logger exists.
	warnings []string
}

// parseConfig parses args. Detail values that are not a non-negative integer and
// radius values that are not a number fall back to their defaults with a
// warning; values that parse but are out of range, an unknown format, a
// non-positive weld precision, or a missing output directory are errors wrapping
// errUsage.
// pflag.ErrHelp is returned as is.
func parseConfig(args []string, out io.Writer) (config, error) {
	cfg := config{format: meshio.Bin, precision: mesh.WeldPrecision}
	var detail, radius string

	fs := pflag.NewFlagSet("hexsphere", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false
	fs.BoolVarP(&cfg.truncated, "truncated", "t", false, "generate truncated icosahedra (hexspheres)")
	fs.BoolVarP(&cfg.colored, "colored", "c", false, "assign a random color to every face (increases the vertex count)")
	fs.StringVarP(&detail, "detail", "d", strconv.Itoa(defaultDetail), "maximum detail level; each level multiplies the triangle count by 4")
	fs.StringVarP(&radius, "radius", "r", "1.0", "radius of the polyhedron")
	fs.VarP(&cfg.format, "format", "f", "output format: bin or json")
	fs.Float32VarP(&cfg.precision, "weld-precision", "p", mesh.WeldPrecision, "vertex welding factor: points closer than 1/p per axis merge; raise it for small radii or high detail")
	fs.Int64Var(&cfg.seed, "seed", 0, "color seed; 0 picks one from the clock")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log construction details")
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: hexsphere [flags] [OUTPUT]\n\nOUTPUT is an existing directory (default %q).\n\n", defaultOutput)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg.detail = defaultDetail
	if d, err := strconv.ParseUint(detail, 10, 31); err == nil {
		cfg.detail = int(d)
	} else {
		cfg.warnings = append(cfg.warnings, fmt.Sprintf("detail %q is not a non-negative integer, using %d", detail, defaultDetail))
	}
	cfg.radius = defaultRadius
	if r, err := strconv.ParseFloat(radius, 32); err == nil {
		cfg.radius = float32(r)
	} else {
		cfg.warnings = append(cfg.warnings, fmt.Sprintf("radius %q is not a number, using %g", radius, defaultRadius))
	}

	switch fs.NArg() {
	case 0:
		cfg.dir = defaultOutput
	case 1:
		cfg.dir = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("%w: expected one output directory, got %d arguments", errUsage, fs.NArg())
	}

	return cfg, cfg.validate()
}

// validate rejects values the generators would refuse, before any file is written.
func (c config) validate() error {
	r := float64(c.radius)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: radius must be a positive number, got %g", errUsage, c.radius)
	}
	if c.detail < 0 || c.detail > geodesic.MaxDetail {
		return fmt.Errorf("%w: detail must be in [0,%d], got %d", errUsage, geodesic.MaxDetail, c.detail)
	}
	p := float64(c.precision)
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return fmt.Errorf("%w: weld precision must be a positive number, got %g", errUsage, c.precision)
	}
	// the finest level binds: lower levels have wider vertex spacing
	if err := c.validateWeld(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := meshio.IsDir(c.dir); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	return nil
}

func (c config) validateWeld() error {
	if c.truncated {
		return hexsphere.ValidateParams(c.radius, c.detail, hexsphere.WithWeldPrecision(c.precision))
	}
	return geodesic.ValidateParams(c.radius, c.detail, geodesic.WithWeldPrecision(c.precision))
}

// weldPrecision returns the configured precision, or the default for a config
// built without parseConfig.
func (c config) weldPrecision() float32 {
	if c.precision <= 0 {
		return mesh.WeldPrecision
	}
	return c.precision
}

// kind is the solid named in output files.
func (c config) kind() meshio.Kind {
	if c.truncated {
		return meshio.Hexsphere
	}
	return meshio.Icosahedron
}
