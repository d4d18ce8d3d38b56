// SPDX-License-Identifier: MIT
// Package: hexsphere/geodesic
//
// errors.go - sentinel errors for the geodesic package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method name, offending value) is attached with %w at the failure site.
//   • Generators never panic at runtime; option constructors panic on nonsense.

package geodesic

import (
	"errors"
	"fmt"
)

// ErrInvalidRadius indicates a radius that is not a finite value > 0.
var ErrInvalidRadius = errors.New("geodesic: radius must be finite and positive")

// ErrInvalidDetail indicates a detail level outside [0, MaxDetail].
var ErrInvalidDetail = errors.New("geodesic: detail level out of range")

// geodesicErrorf prefixes a sentinel with the method context:
// "<Method>: <formatted message>: <sentinel>".
func geodesicErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
