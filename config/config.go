// SPDX-License-Identifier: MIT

// Package config loads container limits and layout from YAML and turns them
// into construction options for sequence and tmatrix.
//
// Example file:
//
//	max_vector_size: 1000
//	max_matrix_size: 100
//	layout: triangular   # or "full" (default)
//
// Omitted keys keep the package defaults.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/utmatrix/sequence"
	"github.com/katalvlaran/utmatrix/tmatrix"
)

// Layout names accepted in the YAML file.
const (
	LayoutFull       = "full"
	LayoutTriangular = "triangular"
)

// ErrInvalidConfig is returned for negative limits or an unknown layout.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Limits holds the configurable bounds and row layout.
type Limits struct {
	MaxVectorSize int    `yaml:"max_vector_size"`
	MaxMatrixSize int    `yaml:"max_matrix_size"`
	Layout        string `yaml:"layout"`
}

// Default returns the limits the library uses when nothing is configured.
func Default() Limits {
	return Limits{
		MaxVectorSize: sequence.DefaultMaxSize,
		MaxMatrixSize: tmatrix.DefaultMaxSize,
		Layout:        LayoutFull,
	}
}

// Load decodes YAML from r on top of Default and validates the result.
// Empty input yields Default.
func Load(r io.Reader) (Limits, error) {
	l := Default()
	if err := yaml.NewDecoder(r).Decode(&l); err != nil && err != io.EOF {
		return Limits{}, errors.Wrap(err, "decode limits")
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}

	return l, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (Limits, error) {
	f, err := os.Open(path)
	if err != nil {
		return Limits{}, errors.Wrapf(err, "open limits file %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Validate rejects negative limits and unknown layouts.
func (l Limits) Validate() error {
	if l.MaxVectorSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_vector_size %d", l.MaxVectorSize)
	}
	if l.MaxMatrixSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_matrix_size %d", l.MaxMatrixSize)
	}
	switch l.Layout {
	case LayoutFull, LayoutTriangular:
	default:
		return errors.Wrapf(ErrInvalidConfig, "layout %q", l.Layout)
	}

	return nil
}

// SequenceOptions converts the limits into sequence options.
func (l Limits) SequenceOptions() []sequence.Option {
	return []sequence.Option{sequence.WithMaxSize(l.MaxVectorSize)}
}

// MatrixOptions converts the limits into tmatrix options.
func (l Limits) MatrixOptions() []tmatrix.Option {
	opts := []tmatrix.Option{
		tmatrix.WithMaxVectorSize(l.MaxVectorSize),
		tmatrix.WithMaxSize(l.MaxMatrixSize),
	}
	if l.Layout == LayoutTriangular {
		opts = append(opts, tmatrix.WithTriangularRows())
	}

	return opts
}
