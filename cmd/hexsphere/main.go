// SPDX-License-Identifier: MIT

// Command hexsphere writes geodesic icosahedra, or their hexagon/pentagon duals,
// for every detail level from 0 up to a maximum.
//
// Usage:
//
//	hexsphere [flags] [OUTPUT]
//
// OUTPUT is an existing directory (default "output/"). One file is written per
// detail level, named {icosahedron|hexsphere}_r{radius}_d{detail}.{bin|json}.
//
// Exit codes: 0 on success, 1 when generation or writing fails, 2 on invalid
// arguments.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run is main without the process exit, writing logs and usage to stderr.
func run(args []string, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}

	log := newLogger(stderr, cfg.verbose)
	defer func() { _ = log.Sync() }()

	for _, w := range cfg.warnings {
		log.Warn(w)
	}
	if err != nil {
		log.Error("invalid arguments", zap.Error(err))
		return exitUsage
	}

	if err := generate(cfg, log); err != nil {
		log.Error("generation failed", zap.Error(err))
		return exitError
	}

	return exitOK
}

// newLogger returns a human-readable console logger.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core)
}
