// SPDX-License-Identifier: MIT

// Package tmatrix: functional configuration for Matrix construction.
package tmatrix

import "github.com/katalvlaran/utmatrix/sequence"

// Layout selects how New allocates rows.
type Layout int

const (
	// FullRows allocates every row with the full matrix size and start index 0.
	FullRows Layout = iota

	// TriangularRows allocates row i with size-i elements and start index i.
	TriangularRows
)

// ---------- Defaults ----------

const (
	// DefaultSize is the size used by NewDefault.
	DefaultSize = 10

	// DefaultMaxSize is the largest matrix size New accepts.
	DefaultMaxSize = 10000

	// DefaultMaxVectorSize bounds the outer row container, as for any Sequence.
	DefaultMaxVectorSize = sequence.DefaultMaxSize

	// DefaultLayout is FullRows.
	DefaultLayout = FullRows

	// CellWidth is the field width Encode uses for every element.
	CellWidth = 8
)

const (
	panicMaxSizeInvalid       = "tmatrix: WithMaxSize: limit must be non-negative"
	panicMaxVectorSizeInvalid = "tmatrix: WithMaxVectorSize: limit must be non-negative"
)

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSize       int    // DefaultMaxSize
	maxVectorSize int    // DefaultMaxVectorSize
	layout        Layout // DefaultLayout
}

// WithMaxSize overrides the matrix size limit (ErrTooLarge above it).
func WithMaxSize(n int) Option {
	if n < 0 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = n }
}

// WithMaxVectorSize overrides the row-container limit (ErrInvalidSize above it).
func WithMaxVectorSize(n int) Option {
	if n < 0 {
		panic(panicMaxVectorSizeInvalid)
	}

	return func(o *Options) { o.maxVectorSize = n }
}

// WithTriangularRows selects the TriangularRows layout.
func WithTriangularRows() Option {
	return func(o *Options) { o.layout = TriangularRows }
}

// WithFullRows selects the FullRows layout (default).
func WithFullRows() Option {
	return func(o *Options) { o.layout = FullRows }
}

// MaxSize reports the effective matrix size limit.
func (o Options) MaxSize() int { return o.maxSize }

// MaxVectorSize reports the effective row-container limit.
func (o Options) MaxVectorSize() int { return o.maxVectorSize }

// Layout reports the effective row layout.
func (o Options) Layout() Layout { return o.layout }

// GatherOptions resolves user options on top of the defaults. Later options win.
func GatherOptions(user ...Option) Options {
	o := Options{
		maxSize:       DefaultMaxSize,
		maxVectorSize: DefaultMaxVectorSize,
		layout:        DefaultLayout,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
