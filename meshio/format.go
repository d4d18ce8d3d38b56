// SPDX-License-Identifier: MIT

package meshio

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects an encoding. The zero value is Bin.
type Format int

const (
	// Bin is the compact little-endian binary layout.
	Bin Format = iota
	// JSON is the human-readable object layout.
	JSON
)

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch {
	case strings.EqualFold(s, "bin"):
		return Bin, nil
	case strings.EqualFold(s, "json"):
		return JSON, nil
	default:
		return Bin, fmt.Errorf("ParseFormat: %q (want bin or json): %w", s, ErrUnknownFormat)
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == JSON {
		return "json"
	}
	return "bin"
}

// String implements fmt.Stringer and pflag.Value.
func (f Format) String() string { return f.Extension() }

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

// Kind names the generated solid in file names.
type Kind string

const (
	Icosahedron Kind = "icosahedron"
	Hexsphere   Kind = "hexsphere"
)

// FileName returns "{kind}_r{radius}_d{detail}.{ext}".
func FileName(kind Kind, radius float32, detail int, format Format) string {
	return fmt.Sprintf("%s_r%s_d%d.%s",
		kind, strconv.FormatFloat(float64(radius), 'f', -1, 32), detail, format.Extension())
}
